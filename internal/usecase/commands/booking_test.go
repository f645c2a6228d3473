//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/venue"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory persistence standing in for the postgres unit of work. The
// overlap predicate mirrors the SQL one through the domain's Overlaps.

type fakeStore struct {
	rooms         map[uuid.UUID]*shared.RoomSnapshot
	venues        map[uuid.UUID]*shared.VenueSnapshot
	roomBookings  map[uuid.UUID]*booking.Booking
	venueBookings map[uuid.UUID]*booking.Booking
	overlapChecks int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:         make(map[uuid.UUID]*shared.RoomSnapshot),
		venues:        make(map[uuid.UUID]*shared.VenueSnapshot),
		roomBookings:  make(map[uuid.UUID]*booking.Booking),
		venueBookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *fakeStore) addRoom(priceCents int64) uuid.UUID {
	id := uuid.New()
	s.rooms[id] = &shared.RoomSnapshot{ID: id, RoomNumber: "101", RoomType: "Standard", PricePerDayCents: priceCents}
	return id
}

func (s *fakeStore) addVenue(priceCents int64) uuid.UUID {
	id := uuid.New()
	s.venues[id] = &shared.VenueSnapshot{ID: id, Name: "Grand Hall", Capacity: 100, PricePerDayCents: priceCents}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Rooms() shared.RoomRepository { return &fakeRoomRepo{store: t.store} }

func (t *fakeTx) Venues() shared.VenueRepository { return &fakeVenueRepo{store: t.store} }

func (t *fakeTx) RoomBookings() shared.BookingRepository {
	return &fakeBookingRepo{store: t.store, bookings: t.store.roomBookings, mode: booking.HalfOpen}
}

func (t *fakeTx) VenueBookings() shared.BookingRepository {
	return &fakeBookingRepo{store: t.store, bookings: t.store.venueBookings, mode: booking.Closed}
}

func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

type fakeRoomRepo struct {
	store *fakeStore
}

func (r *fakeRoomRepo) Insert(_ context.Context, rm *room.Room) error {
	for _, snap := range r.store.rooms {
		if snap.RoomNumber == rm.Number() && snap.ID != rm.ID() {
			return infra.WrapRepoErr("duplicate room number", nil, infra.KindDuplicateKey)
		}
	}
	r.store.rooms[rm.ID()] = &shared.RoomSnapshot{
		ID:               rm.ID(),
		RoomNumber:       rm.Number(),
		RoomType:         string(rm.Type()),
		PricePerDayCents: rm.PricePerDay().Cents(),
	}
	return nil
}

func (r *fakeRoomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.store.rooms[rm.ID()]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return r.Insert(context.Background(), rm)
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(r.store.rooms, id)
	return nil
}

func (r *fakeRoomRepo) LockForBooking(_ context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	snap, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return &shared.ResourceSnapshot{ID: snap.ID, Name: snap.RoomNumber, PricePerDayCents: snap.PricePerDayCents}, nil
}

type fakeVenueRepo struct {
	store *fakeStore
}

func (r *fakeVenueRepo) Insert(_ context.Context, v *venue.Venue) error {
	r.store.venues[v.ID()] = &shared.VenueSnapshot{
		ID:               v.ID(),
		Name:             v.Name(),
		Capacity:         v.Capacity(),
		PricePerDayCents: v.PricePerDay().Cents(),
	}
	return nil
}

func (r *fakeVenueRepo) Update(_ context.Context, v *venue.Venue) error {
	if _, ok := r.store.venues[v.ID()]; !ok {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return r.Insert(context.Background(), v)
}

func (r *fakeVenueRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.venues[id]; !ok {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	delete(r.store.venues, id)
	return nil
}

func (r *fakeVenueRepo) LockForBooking(_ context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	snap, ok := r.store.venues[id]
	if !ok {
		return nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return &shared.ResourceSnapshot{ID: snap.ID, Name: snap.Name, PricePerDayCents: snap.PricePerDayCents}, nil
}

type fakeBookingRepo struct {
	store    *fakeStore
	bookings map[uuid.UUID]*booking.Booking
	mode     booking.RangeMode
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *booking.Booking) error {
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.ChangePaymentStatus(status)
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) OverlapExists(_ context.Context, resourceID uuid.UUID, dates booking.DateRange, excludeID *uuid.UUID) (bool, error) {
	r.store.overlapChecks++
	for id, b := range r.bookings {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if b.ResourceID() == resourceID && dates.Overlaps(b.Dates()) {
			return true, nil
		}
	}
	return false, nil
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) VenueByID(_ context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	snap, ok := r.store.venues[id]
	if !ok {
		return nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) RoomBookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return snapshotOf(r.store.roomBookings, id)
}

func (r *fakeReads) VenueBookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return snapshotOf(r.store.venueBookings, id)
}

func snapshotOf(bookings map[uuid.UUID]*booking.Booking, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &shared.BookingSnapshot{
		ID:              b.ID(),
		ResourceID:      b.ResourceID(),
		GuestName:       b.GuestName().String(),
		GuestPhone:      b.GuestPhone().String(),
		StartDate:       b.Dates().Start(),
		EndDate:         b.Dates().End(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var today = date(2030, 1, 1)

func newRoomEngine() (*fakeStore, commands.RoomBookingCommands) {
	store := newFakeStore()
	uow := &fakeUoW{store: store}
	return store, commands.NewRoomBookingCommands(uow, clock.NewMockClock(today))
}

func newVenueEngine() (*fakeStore, commands.VenueBookingCommands) {
	store := newFakeStore()
	uow := &fakeUoW{store: store}
	return store, commands.NewVenueBookingCommands(uow, clock.NewMockClock(today))
}

func validInput(roomID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GuestName:  "Taro Yamada",
		GuestPhone: "090-1234-5678",
		ResourceID: roomID,
		StartDate:  date(2030, 1, 10),
		EndDate:    date(2030, 1, 12),
		Status:     "unpaid",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the booking and derives the price", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)

		id, err := engine.Create(ctx, validInput(roomID))
		require.NoError(t, err)

		b := store.roomBookings[id]
		require.NotNil(t, b)
		assert.Equal(t, int64(3000000), b.TotalPrice().Cents()) // 2 nights
		assert.Equal(t, booking.StatusUnpaid, b.Status())
	})

	t.Run("unknown room", func(t *testing.T) {
		_, engine := newRoomEngine()
		_, err := engine.Create(ctx, validInput(uuid.New()))
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("empty stay", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)
		in := validInput(roomID)
		in.EndDate = in.StartDate

		_, err := engine.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
		assert.Empty(t, store.roomBookings)
	})

	t.Run("past start date", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)
		in := validInput(roomID)
		in.StartDate = date(2029, 12, 30)
		in.EndDate = date(2030, 1, 2)

		_, err := engine.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("invalid status", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)
		in := validInput(roomID)
		in.Status = "pending"

		_, err := engine.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("overlapping stay is rejected", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)

		_, err := engine.Create(ctx, validInput(roomID)) // Jan 10 - Jan 12
		require.NoError(t, err)

		in := validInput(roomID)
		in.StartDate = date(2030, 1, 11)
		in.EndDate = date(2030, 1, 13)
		_, err = engine.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
		assert.Len(t, store.roomBookings, 1)
	})

	t.Run("back-to-back stay on the checkout day is allowed", func(t *testing.T) {
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)

		_, err := engine.Create(ctx, validInput(roomID)) // Jan 10 - Jan 12
		require.NoError(t, err)

		in := validInput(roomID)
		in.StartDate = date(2030, 1, 12)
		in.EndDate = date(2030, 1, 14)
		_, err = engine.Create(ctx, in)
		require.NoError(t, err)
		assert.Len(t, store.roomBookings, 2)
	})

	t.Run("same dates on another room do not conflict", func(t *testing.T) {
		store, engine := newRoomEngine()
		first := store.addRoom(1500000)
		second := store.addRoom(2000000)

		_, err := engine.Create(ctx, validInput(first))
		require.NoError(t, err)
		_, err = engine.Create(ctx, validInput(second))
		require.NoError(t, err)
	})
}

func TestCreateVenueBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("closed range bills the end day", func(t *testing.T) {
		store, engine := newVenueEngine()
		venueID := store.addVenue(5000000)

		in := validInput(venueID)
		in.StartDate = date(2030, 2, 1)
		in.EndDate = date(2030, 2, 3)
		id, err := engine.Create(ctx, in)
		require.NoError(t, err)

		b := store.venueBookings[id]
		require.NotNil(t, b)
		assert.Equal(t, int64(15000000), b.TotalPrice().Cents()) // 3 days
	})

	t.Run("booking starting on an occupied end day conflicts", func(t *testing.T) {
		store, engine := newVenueEngine()
		venueID := store.addVenue(5000000)

		in := validInput(venueID)
		in.StartDate = date(2030, 2, 1)
		in.EndDate = date(2030, 2, 3)
		_, err := engine.Create(ctx, in)
		require.NoError(t, err)

		in.StartDate = date(2030, 2, 3)
		in.EndDate = date(2030, 2, 5)
		_, err = engine.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrBookingConflict)

		in.StartDate = date(2030, 2, 4)
		in.EndDate = date(2030, 2, 6)
		_, err = engine.Create(ctx, in)
		require.NoError(t, err)
	})

	t.Run("single-day booking", func(t *testing.T) {
		store, engine := newVenueEngine()
		venueID := store.addVenue(5000000)

		in := validInput(venueID)
		in.StartDate = date(2030, 2, 10)
		in.EndDate = date(2030, 2, 10)
		id, err := engine.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(5000000), store.venueBookings[id].TotalPrice().Cents())
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeStore, commands.RoomBookingCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		store, engine := newRoomEngine()
		roomID := store.addRoom(1500000)
		id, err := engine.Create(ctx, validInput(roomID))
		require.NoError(t, err)
		return store, engine, roomID, id
	}

	t.Run("guest-only change keeps dates and price", func(t *testing.T) {
		store, engine, _, id := seed(t)
		checksBefore := store.overlapChecks

		name := "Hanako Sato"
		err := engine.Update(ctx, id, commands.UpdateBookingInput{GuestName: &name})
		require.NoError(t, err)

		b := store.roomBookings[id]
		assert.Equal(t, "Hanako Sato", b.GuestName().String())
		assert.Equal(t, int64(3000000), b.TotalPrice().Cents())
		assert.Equal(t, date(2030, 1, 10), b.Dates().Start())
		assert.Equal(t, checksBefore, store.overlapChecks, "guest-only update must skip the availability check")
	})

	t.Run("status-only change skips the availability check", func(t *testing.T) {
		store, engine, _, id := seed(t)
		checksBefore := store.overlapChecks

		status := "paid"
		err := engine.Update(ctx, id, commands.UpdateBookingInput{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPaid, store.roomBookings[id].Status())
		assert.Equal(t, checksBefore, store.overlapChecks)
	})

	t.Run("date change re-prices the stay", func(t *testing.T) {
		store, engine, _, id := seed(t)

		end := date(2030, 1, 13) // now 3 nights
		err := engine.Update(ctx, id, commands.UpdateBookingInput{EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, int64(4500000), store.roomBookings[id].TotalPrice().Cents())
	})

	t.Run("a booking never conflicts with itself", func(t *testing.T) {
		_, engine, _, id := seed(t)

		start := date(2030, 1, 11)
		end := date(2030, 1, 13)
		err := engine.Update(ctx, id, commands.UpdateBookingInput{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
	})

	t.Run("conflict with another booking", func(t *testing.T) {
		_, engine, roomID, id := seed(t)

		other := validInput(roomID)
		other.StartDate = date(2030, 1, 20)
		other.EndDate = date(2030, 1, 22)
		_, err := engine.Create(ctx, other)
		require.NoError(t, err)

		start := date(2030, 1, 21)
		end := date(2030, 1, 23)
		err = engine.Update(ctx, id, commands.UpdateBookingInput{StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("moving to another room re-checks against that room", func(t *testing.T) {
		store, engine, _, id := seed(t)
		otherRoom := store.addRoom(2000000)

		taken := validInput(otherRoom)
		_, err := engine.Create(ctx, taken) // same Jan 10 - Jan 12 window
		require.NoError(t, err)

		err = engine.Update(ctx, id, commands.UpdateBookingInput{ResourceID: &otherRoom})
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("provided start date must not be in the past", func(t *testing.T) {
		_, engine, _, id := seed(t)

		start := date(2029, 12, 1)
		end := date(2029, 12, 5)
		err := engine.Update(ctx, id, commands.UpdateBookingInput{StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, engine := newRoomEngine()
		name := "Nobody"
		err := engine.Update(ctx, uuid.New(), commands.UpdateBookingInput{GuestName: &name})
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("moving to an unknown room", func(t *testing.T) {
		_, engine, _, id := seed(t)
		missing := uuid.New()
		err := engine.Update(ctx, id, commands.UpdateBookingInput{ResourceID: &missing})
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	store, engine := newRoomEngine()
	roomID := store.addRoom(1500000)
	id, err := engine.Create(ctx, validInput(roomID))
	require.NoError(t, err)

	checksBefore := store.overlapChecks
	require.NoError(t, engine.UpdatePaymentStatus(ctx, id, "paid"))
	assert.Equal(t, booking.StatusPaid, store.roomBookings[id].Status())

	// reverting is allowed
	require.NoError(t, engine.UpdatePaymentStatus(ctx, id, "unpaid"))
	assert.Equal(t, booking.StatusUnpaid, store.roomBookings[id].Status())

	assert.Equal(t, checksBefore, store.overlapChecks, "status-only updates must skip the availability check")

	assert.ErrorIs(t, engine.UpdatePaymentStatus(ctx, id, "refunded"), errs.ErrDomainValidation)
	assert.ErrorIs(t, engine.UpdatePaymentStatus(ctx, uuid.New(), "paid"), errs.ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	store, engine := newRoomEngine()
	roomID := store.addRoom(1500000)
	id, err := engine.Create(ctx, validInput(roomID))
	require.NoError(t, err)

	require.NoError(t, engine.Delete(ctx, id))
	assert.Empty(t, store.roomBookings)

	assert.ErrorIs(t, engine.Delete(ctx, id), errs.ErrBookingNotFound)

	t.Run("freed dates can be rebooked", func(t *testing.T) {
		_, err := engine.Create(ctx, validInput(roomID))
		require.NoError(t, err)
	})
}
