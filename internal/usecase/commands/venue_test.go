//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenueCommands() (*fakeStore, commands.VenueCommands) {
	store := newFakeStore()
	return store, commands.NewVenueCommands(&fakeUoW{store: store})
}

func TestCreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the venue", func(t *testing.T) {
		store, engine := newVenueCommands()

		id, err := engine.Create(ctx, commands.CreateVenueInput{
			Name:        "Grand Hall",
			Capacity:    200,
			PricePerDay: "500",
		})
		require.NoError(t, err)

		snap := store.venues[id]
		require.NotNil(t, snap)
		assert.Equal(t, "Grand Hall", snap.Name)
		assert.Equal(t, 200, snap.Capacity)
		assert.Equal(t, int64(50000), snap.PricePerDayCents)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, engine := newVenueCommands()

		cases := map[string]commands.CreateVenueInput{
			"zero capacity":   {Name: "Hall", Capacity: 0, PricePerDay: "500"},
			"blank name":      {Name: " ", Capacity: 10, PricePerDay: "500"},
			"malformed price": {Name: "Hall", Capacity: 10, PricePerDay: "five"},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := engine.Create(ctx, in)
				assert.ErrorIs(t, err, errs.ErrDomainValidation)
			})
		}
	})
}

func TestUpdateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only the provided fields", func(t *testing.T) {
		store, engine := newVenueCommands()
		id, err := engine.Create(ctx, commands.CreateVenueInput{
			Name: "Grand Hall", Capacity: 200, PricePerDay: "500",
		})
		require.NoError(t, err)

		capacity := 150
		require.NoError(t, engine.Update(ctx, id, commands.UpdateVenueInput{Capacity: &capacity}))

		snap := store.venues[id]
		assert.Equal(t, "Grand Hall", snap.Name)
		assert.Equal(t, 150, snap.Capacity)
		assert.Equal(t, int64(50000), snap.PricePerDayCents)
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, engine := newVenueCommands()
		name := "Annex"
		err := engine.Update(ctx, uuid.New(), commands.UpdateVenueInput{Name: &name})
		assert.ErrorIs(t, err, errs.ErrVenueNotFound)
	})
}

func TestDeleteVenue(t *testing.T) {
	ctx := context.Background()

	store, engine := newVenueCommands()
	id, err := engine.Create(ctx, commands.CreateVenueInput{
		Name: "Grand Hall", Capacity: 200, PricePerDay: "500",
	})
	require.NoError(t, err)

	require.NoError(t, engine.Delete(ctx, id))
	assert.Empty(t, store.venues)

	assert.ErrorIs(t, engine.Delete(ctx, id), errs.ErrVenueNotFound)
}
