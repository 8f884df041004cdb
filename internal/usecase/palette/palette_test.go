package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_Shape(t *testing.T) {
	p := Palette()
	require.Len(t, p, 18)
	assert.Equal(t, "red", p[0].Name)
	assert.Equal(t, "slate", p[17].Name)
	assert.Equal(t, "bg-purple-600", p[13].Avatar)
	assert.Equal(t, "radial-gradient(circle at center, #581c87 0%, #202124 100%)", p[13].Gradient)

	// callers get a copy
	p[0].Name = "mutated"
	assert.Equal(t, "red", Palette()[0].Name)
}

func TestColorFor_EmptyNameIsFirstEntry(t *testing.T) {
	assert.Equal(t, ColorFor(""), ColorFor(""))
	assert.Equal(t, Palette()[0], ColorFor(""))
	assert.Equal(t, 0, Index(""))
}

func TestHash_RegressionFixtures(t *testing.T) {
	tests := []struct {
		name  string
		hash  int32
		index int
	}{
		{"Algo Tutor", -1973221591, 13},
		{"S Yuvaraj", 1085528327, 5},
		{"A Anandaraj", 1812038757, 15},
		{"M Suriya", 1875528756, 0},
		{"User 5", -1752165056, 2},
		{" ", 32, 14},
		{"Zoë", 90166, 4},
		// surrogate pair hashes as two code units
		{"😀", 1772899, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hash, Hash(tt.name))
			assert.Equal(t, tt.index, Index(tt.name))
			assert.Equal(t, Palette()[tt.index], ColorFor(tt.name))
		})
	}
}

func TestColorFor_AlgoTutorIsPurple(t *testing.T) {
	c := ColorFor("Algo Tutor")
	assert.Equal(t, "purple", c.Name)
	assert.Equal(t, "bg-purple-600", c.Avatar)
}

func TestColorFor_Stable(t *testing.T) {
	want := ColorFor("Algo Tutor")
	for i := 0; i < 1000; i++ {
		require.Equal(t, want, ColorFor("Algo Tutor"))
	}
}

func TestIndexFor_Extremes(t *testing.T) {
	assert.Equal(t, 2, indexFor(math.MinInt32))
	assert.Equal(t, 1, indexFor(math.MaxInt32))
	assert.Equal(t, 0, indexFor(0))
	assert.Equal(t, 1, indexFor(-19))
}

func TestIndex_AlwaysInRange(t *testing.T) {
	names := []string{"a", "ab", "The quick brown fox jumps over the lazy dog", "\x00", "日本語", "\xff\xfe"}
	for _, n := range names {
		idx := Index(n)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, Size)
	}
}
