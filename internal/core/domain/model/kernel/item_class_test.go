package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyItem(t *testing.T) {
	t.Run("flanged_variants", func(t *testing.T) {
		assert.Equal(t, kernel.ItemClassFlanged, kernel.ClassifyItem("Bocht 90 met flens DN200"))
		assert.Equal(t, kernel.ItemClassFlanged, kernel.ClassifyItem("FLENS koppeling"))
		assert.Equal(t, kernel.ItemClassFlanged, kernel.ClassifyItem("flanged elbow 45"))
	})

	t.Run("standard_items", func(t *testing.T) {
		assert.Equal(t, kernel.ItemClassStandard, kernel.ClassifyItem("Buis DN150 PN10"))
		assert.Equal(t, kernel.ItemClassStandard, kernel.ClassifyItem(""))
	})
}

func TestItemClass_RequiredMeasurement(t *testing.T) {
	assert.Equal(t, "wanddikte", kernel.ItemClassStandard.RequiredMeasurement())
	assert.Equal(t, "flensdikte", kernel.ItemClassFlanged.RequiredMeasurement())
}

func TestItemClass_Validate(t *testing.T) {
	require.NoError(t, kernel.ItemClassStandard.Validate())
	require.NoError(t, kernel.ItemClassFlanged.Validate())
	require.Error(t, kernel.ItemClassUnknown.Validate())
	require.Error(t, kernel.ItemClass(99).Validate())
}

func TestItemClass_String(t *testing.T) {
	assert.Equal(t, "Standard", kernel.ItemClassStandard.String())
	assert.Equal(t, "Flanged", kernel.ItemClassFlanged.String())
	assert.Equal(t, "Unknown", kernel.ItemClass(99).String())
}
