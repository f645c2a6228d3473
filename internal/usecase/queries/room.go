package queries

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomView struct {
	ID          uuid.UUID
	RoomNumber  string
	RoomType    string
	PricePerDay string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (uc *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	record, err := uc.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view := toRoomView(*record)
	return &view, nil
}

func (uc *roomQueriesImpl) List(ctx context.Context) ([]RoomView, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]RoomView, 0, len(records))
	for _, r := range records {
		views = append(views, toRoomView(r))
	}
	return views, nil
}

func toRoomView(r RoomRecord) RoomView {
	return RoomView{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		PricePerDay: booking.FormatCents(r.PricePerDayCents),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
