package queries

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type VenueView struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	PricePerDay string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VenueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	List(ctx context.Context) ([]VenueView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (uc *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	record, err := uc.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVenueNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view := toVenueView(*record)
	return &view, nil
}

func (uc *venueQueriesImpl) List(ctx context.Context) ([]VenueView, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]VenueView, 0, len(records))
	for _, r := range records {
		views = append(views, toVenueView(r))
	}
	return views, nil
}

func toVenueView(r VenueRecord) VenueView {
	return VenueView{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: booking.FormatCents(r.PricePerDayCents),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
