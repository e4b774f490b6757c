package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/equiv/internal/models"
)

func TestCategories_AllStaticHaveAtLeastTwoUnits(t *testing.T) {
	for _, c := range Categories() {
		if c.IsCurrency() {
			assert.Empty(t, UnitsFor(c.ID), "currency units are dynamic")
			continue
		}
		t.Run(string(c.ID), func(t *testing.T) {
			units := UnitsFor(c.ID)
			assert.GreaterOrEqual(t, len(units), 2)
			assert.Equal(t, len(units), UnitCount(c.ID))
			for _, u := range units {
				assert.NotEmpty(t, u.Name)
				assert.NotEmpty(t, u.Symbol)
				assert.NotNil(t, u.Rule)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup(models.Force)
	require.True(t, ok)
	assert.Equal(t, "Force", c.DisplayName)
	assert.True(t, c.IsCustom())

	c, ok = Lookup(models.Currency)
	require.True(t, ok)
	assert.True(t, c.IsCurrency())

	_, ok = Lookup("unicorns")
	assert.False(t, ok)
}

func TestUnitsFor_LengthOrder(t *testing.T) {
	want := []string{"m", "km", "cm", "mm", "mi", "yd", "ft", "in", "NM", "µm"}
	units := UnitsFor(models.Length)
	require.Len(t, units, len(want))
	for i, sym := range want {
		assert.Equal(t, sym, units[i].Symbol, "index %d", i)
	}
}

func TestUnitsFor_ReturnsCopy(t *testing.T) {
	units := UnitsFor(models.Mass)
	units[0].Name = "changed"

	u, ok := UnitAt(models.Mass, 0)
	require.True(t, ok)
	assert.Equal(t, "Kilograms", u.Name)
}

func TestUnitAt_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		index    int
	}{
		{"negative", models.Length, -1},
		{"past end", models.Length, 10},
		{"currency", models.Currency, 0},
		{"unknown category", "unicorns", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := UnitAt(tt.category, tt.index)
			assert.False(t, ok)
		})
	}
	assert.Equal(t, 0, UnitCount(models.Currency))
}

func TestUnitLabel(t *testing.T) {
	u, _ := UnitAt(models.Force, 2)
	assert.Equal(t, "Pound-force (lbf)", u.Label())
}
