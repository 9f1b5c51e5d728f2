package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
)

func TestParseRegion(t *testing.T) {
	for _, region := range order.Regions() {
		got, err := order.ParseRegion(region.String())
		require.NoError(t, err)
		assert.Equal(t, region, got)
	}

	got, err := order.ParseRegion("  east ")
	require.NoError(t, err)
	assert.Equal(t, order.East, got)

	_, err = order.ParseRegion("Atlantis")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegions_DisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]order.Region{order.North, order.South, order.Central, order.West, order.East},
		order.Regions())
	assert.Equal(t, order.Central, order.DefaultRegion)
	require.Error(t, order.RegionUnknown.Validate())
}
