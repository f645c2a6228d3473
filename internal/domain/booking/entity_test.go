//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = date(2030, 1, 1)

func TestNewBooking(t *testing.T) {
	t.Run("derives the total price from the tariff", func(t *testing.T) {
		b := builder.NewBookingBuilder() // two nights at 15000.00
		actual, err := b.BuildDomain(today)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ResourceID, actual.ResourceID())
		assert.Equal(t, 2, actual.Days())
		assert.Equal(t, b.PerDayCents*2, actual.TotalPrice().Cents())
		assert.Equal(t, booking.StatusUnpaid, actual.Status())
	})

	t.Run("closed mode bills the end day too", func(t *testing.T) {
		b := builder.NewVenueBookingBuilder() // Feb 1 through Feb 3 inclusive
		actual, err := b.BuildDomain(today)
		require.NoError(t, err)

		assert.Equal(t, 3, actual.Days())
		assert.Equal(t, b.PerDayCents*3, actual.TotalPrice().Cents())
	})

	t.Run("rejects a range whose mode differs from the tariff", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		name, err := booking.NewGuestName(b.GuestName)
		require.NoError(t, err)
		phone, err := booking.NewGuestPhone(b.GuestPhone)
		require.NoError(t, err)
		dates, err := booking.NewDateRange(b.StartDate, b.EndDate, booking.Closed)
		require.NoError(t, err)

		_, err = booking.NewBooking(b.Tariff(), name, phone, dates, booking.StatusUnpaid, today)
		assert.ErrorIs(t, err, booking.ErrRangeModeMismatch)
	})

	t.Run("rejects a stay starting in the past", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StartDate = date(2029, 12, 20)
			b.EndDate = date(2029, 12, 22)
		})
		_, err := b.BuildDomain(today)
		assert.ErrorIs(t, err, booking.ErrPastStart)
	})
}

func TestTariffPriceFor(t *testing.T) {
	perDay, err := booking.ParseMoney("150000.00")
	require.NoError(t, err)
	tariff := booking.Tariff{ResourceID: uuid.New(), PerDay: perDay, Mode: booking.HalfOpen}

	dates := mustRange(t, date(2025, 1, 10), date(2025, 1, 12), booking.HalfOpen)
	assert.Equal(t, "300000.00", tariff.PriceFor(dates).String())
}

func TestChangePaymentStatus(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain(today)
	require.NoError(t, err)

	require.NoError(t, b.ChangePaymentStatus(booking.StatusPaid))
	assert.Equal(t, booking.StatusPaid, b.Status())

	// reverting to unpaid is allowed
	require.NoError(t, b.ChangePaymentStatus(booking.StatusUnpaid))
	assert.Equal(t, booking.StatusUnpaid, b.Status())

	assert.ErrorIs(t, b.ChangePaymentStatus(booking.Status("refunded")), booking.ErrInvalidStatus)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"unpaid", "paid"} {
		s, err := booking.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	for _, invalid := range []string{"", "Paid", "UNPAID", "pending"} {
		_, err := booking.ParseStatus(invalid)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, "input %q", invalid)
	}
}

func TestGuestValueObjects(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		name, err := booking.NewGuestName("  Hanako Sato  ")
		require.NoError(t, err)
		assert.Equal(t, "Hanako Sato", name.String())

		_, err = booking.NewGuestName("   ")
		assert.ErrorIs(t, err, booking.ErrGuestNameRequired)

		long := make([]byte, booking.MaxGuestNameLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err = booking.NewGuestName(string(long))
		assert.ErrorIs(t, err, booking.ErrGuestNameTooLong)
	})

	t.Run("phone", func(t *testing.T) {
		phone, err := booking.NewGuestPhone("090-1234-5678")
		require.NoError(t, err)
		assert.Equal(t, "090-1234-5678", phone.String())

		_, err = booking.NewGuestPhone("")
		assert.ErrorIs(t, err, booking.ErrGuestPhoneRequired)

		_, err = booking.NewGuestPhone("012345678901234567890")
		assert.ErrorIs(t, err, booking.ErrGuestPhoneTooLong)
	})
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	resourceID := uuid.New()
	name, _ := booking.NewGuestName("Taro Yamada")
	phone, _ := booking.NewGuestPhone("090-1234-5678")
	dates := mustRange(t, date(2020, 5, 1), date(2020, 5, 3), booking.HalfOpen)
	price, _ := booking.NewMoney(3000000)
	createdAt := time.Date(2020, 4, 1, 10, 0, 0, 0, time.UTC)

	// stored bookings may start in the past; Reconstruct never revalidates
	b := booking.Reconstruct(id, resourceID, name, phone, dates, price, booking.StatusPaid, createdAt, createdAt)
	assert.Equal(t, id, b.ID())
	assert.Equal(t, int64(3000000), b.TotalPrice().Cents())
	assert.Equal(t, createdAt, b.CreatedAt())
}
