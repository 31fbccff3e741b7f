package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/dataset"
)

func TestGenerators_LabelRules(t *testing.T) {
	const n = 200
	tests := []struct {
		name string
		rule func(p dataset.Point) bool
	}{
		{"simple", func(p dataset.Point) bool { return p.X1 < 0.5 }},
		{"diag", func(p dataset.Point) bool { return p.X1+p.X2 < 0.5 }},
		{"split", func(p dataset.Point) bool { return p.X1 < 0.2 || p.X1 > 0.8 }},
		{"xor", func(p dataset.Point) bool {
			return (p.X1 < 0.5 && p.X2 > 0.5) || (p.X1 > 0.5 && p.X2 < 0.5)
		}},
		{"circle", func(p dataset.Point) bool {
			dx, dy := p.X1-0.5, p.X2-0.5
			return dx*dx+dy*dy > 0.1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := dataset.ByName(tt.name, n, rand.New(rand.NewSource(11)))
			require.NoError(t, err)
			require.Equal(t, n, ds.N)
			require.Len(t, ds.X, n)
			require.Len(t, ds.Y, n)

			for i, p := range ds.X {
				want := 0
				if tt.rule(p) {
					want = 1
				}
				assert.Equal(t, want, ds.Y[i], "point %d (%v)", i, p)
			}
		})
	}
}

func TestGenerators_PointsInUnitSquare(t *testing.T) {
	for _, name := range []string{"simple", "diag", "split", "xor", "circle"} {
		ds, err := dataset.ByName(name, 100, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		for _, p := range ds.X {
			assert.GreaterOrEqual(t, p.X1, 0.0)
			assert.Less(t, p.X1, 1.0)
			assert.GreaterOrEqual(t, p.X2, 0.0)
			assert.Less(t, p.X2, 1.0)
		}
	}
}

func TestSpiral(t *testing.T) {
	ds := dataset.Spiral(100)
	require.Equal(t, 100, ds.N)

	zeros, ones := 0, 0
	for _, y := range ds.Y {
		switch y {
		case 0:
			zeros++
		case 1:
			ones++
		default:
			t.Fatalf("unexpected label %d", y)
		}
	}
	assert.Equal(t, 50, zeros)
	assert.Equal(t, 50, ones)
}

func TestByName_Deterministic(t *testing.T) {
	a, err := dataset.ByName("xor", 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := dataset.ByName("xor", 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestByName_Unknown(t *testing.T) {
	_, err := dataset.ByName("moons", 10, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestNames_CoveredByByName(t *testing.T) {
	for _, name := range dataset.Names() {
		_, err := dataset.ByName(name, 10, rand.New(rand.NewSource(1)))
		assert.NoError(t, err, name)
	}
}
