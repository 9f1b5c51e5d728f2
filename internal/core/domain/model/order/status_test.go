package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    order.Status
		wantErr bool
	}{
		{raw: "READY_FOR_DELIVERY", want: order.ReadyForDelivery},
		{raw: "ON_DELIVERY", want: order.OnDelivery},
		{raw: "DELIVERED", want: order.Delivered},
		{raw: "UNKNOWN", wantErr: true},
		{raw: "delivered", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := order.ParseStatus(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.ReadyForDelivery.Validate())
	require.NoError(t, order.OnDelivery.Validate())
	require.NoError(t, order.Delivered.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("pick up", func(t *testing.T) {
		next, err := order.ReadyForDelivery.PickUp()
		require.NoError(t, err)
		assert.Equal(t, order.OnDelivery, next)

		for _, s := range []order.Status{order.Unknown, order.OnDelivery, order.Delivered} {
			_, err = s.PickUp()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
		}
	})

	t.Run("deliver", func(t *testing.T) {
		next, err := order.OnDelivery.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		for _, s := range []order.Status{order.Unknown, order.ReadyForDelivery, order.Delivered} {
			_, err = s.Deliver()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
		}
	})

	t.Run("terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.False(t, order.OnDelivery.IsTerminal())
		_, err := order.Delivered.Next()
		require.Error(t, err)
	})
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name         string
		current      order.Status
		acknowledged bool
		want         order.Status
		wantErr      bool
	}{
		{name: "ready acknowledged", current: order.ReadyForDelivery, acknowledged: true, want: order.OnDelivery},
		{name: "ready rejected", current: order.ReadyForDelivery, acknowledged: false, want: order.ReadyForDelivery},
		{name: "on delivery acknowledged", current: order.OnDelivery, acknowledged: true, want: order.Delivered},
		{name: "on delivery rejected", current: order.OnDelivery, acknowledged: false, want: order.OnDelivery},
		{name: "delivered rejected stays", current: order.Delivered, acknowledged: false, want: order.Delivered},
		{name: "delivered acknowledged fails", current: order.Delivered, acknowledged: true, wantErr: true},
		{name: "unknown fails", current: order.Unknown, acknowledged: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.NextStatus(tt.current, tt.acknowledged)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatus_NeverMovesBackward(t *testing.T) {
	for _, current := range []order.Status{order.ReadyForDelivery, order.OnDelivery, order.Delivered} {
		for _, ack := range []bool{true, false} {
			got, err := order.NextStatus(current, ack)
			if err != nil {
				continue
			}
			assert.GreaterOrEqual(t, int(got), int(current))
			assert.LessOrEqual(t, int(got)-int(current), 1)
		}
	}
}
