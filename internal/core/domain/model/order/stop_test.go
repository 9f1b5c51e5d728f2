package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
)

func TestNewStop(t *testing.T) {
	t.Run("address only", func(t *testing.T) {
		s, err := order.NewStop(" West ", " 1 Jurong Gateway ", nil)
		require.NoError(t, err)
		assert.Equal(t, "West", s.Location())
		assert.Equal(t, "1 Jurong Gateway", s.Address())
		_, ok := s.Coordinates()
		assert.False(t, ok)
		assert.True(t, s.IsLocatable())
	})

	t.Run("with coordinates", func(t *testing.T) {
		c, err := kernel.NewCoordinates(1.33, 103.74)
		require.NoError(t, err)
		s, err := order.NewStop("West", "", &c)
		require.NoError(t, err)
		got, ok := s.Coordinates()
		assert.True(t, ok)
		assert.Equal(t, "1.33,103.74", got.String())
		assert.True(t, s.IsLocatable())
	})

	t.Run("nothing to locate", func(t *testing.T) {
		s, err := order.NewStop("North", "", nil)
		require.NoError(t, err)
		assert.False(t, s.IsLocatable())
	})

	t.Run("unconstructed coordinates rejected", func(t *testing.T) {
		_, err := order.NewStop("North", "x", &kernel.Coordinates{})
		require.Error(t, err)
	})
}

func TestParseStopKind(t *testing.T) {
	k, err := order.ParseStopKind("Pickup")
	require.NoError(t, err)
	assert.Equal(t, order.PickupStop, k)
	assert.Equal(t, "pickup", k.String())

	k, err = order.ParseStopKind("delivery")
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryStop, k)

	_, err = order.ParseStopKind("dropoff")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseOrderTime(t *testing.T) {
	got, err := order.ParseOrderTime("2024-10-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)))

	got, err = order.ParseOrderTime("2024-10-01T20:00:00+08:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)))

	got, err = order.ParseOrderTime("2024-10-01T12:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC), got)

	got, err = order.ParseOrderTime("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = order.ParseOrderTime("yesterday")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
