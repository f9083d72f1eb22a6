package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostPerUnit(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice float64
		units     int
		want      float64
	}{
		{name: "case of twelve", unitPrice: 24.00, units: 12, want: 2.00},
		{name: "single unit", unitPrice: 4.00, units: 1, want: 4.00},
		{name: "repeating decimal rounds half up", unitPrice: 10.00, units: 3, want: 3.33},
		{name: "half cent rounds up", unitPrice: 0.125, units: 1, want: 0.13},
		{name: "zero units treated as one", unitPrice: 7.50, units: 0, want: 7.50},
		{name: "negative units treated as one", unitPrice: 7.50, units: -3, want: 7.50},
		{name: "zero price", unitPrice: 0, units: 5, want: 0},
		{name: "float noise stays exact", unitPrice: 0.1, units: 1, want: 0.10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CostPerUnit(tc.unitPrice, tc.units)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := CostPerUnit(-1.00, 2)
		assert.ErrorIs(t, err, ErrNegativeUnitPrice)
	})
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 3.33, RoundMoney(3.3349))
	assert.Equal(t, 3.34, RoundMoney(3.335))
	assert.Equal(t, -3.34, RoundMoney(-3.335))
	assert.Equal(t, 2.00, RoundMoney(2))
}

func TestCentsDiffer(t *testing.T) {
	assert.False(t, CentsDiffer(3.501, 3.504))
	assert.True(t, CentsDiffer(3.50, 3.51))
	assert.False(t, CentsDiffer(4.00, 4.0001))
}

func TestWithinEpsilon(t *testing.T) {
	assert.True(t, WithinEpsilon(100.00, 100.04, 0.05))
	assert.True(t, WithinEpsilon(100.00, 100.05, 0.05))
	assert.False(t, WithinEpsilon(100.00, 100.06, 0.05))
	assert.True(t, WithinEpsilon(99.96, 100.00, 0.05))
}
