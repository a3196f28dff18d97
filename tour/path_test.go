// SPDX-License-Identifier: MIT

package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/tour"
)

func TestPath_Helpers(t *testing.T) {
	p := tour.Path{"a", "b", "c", "a"}
	assert.True(t, p.Closed())
	assert.Equal(t, tour.Path{"a", "b", "c"}, p.Ring())
	assert.Equal(t, "a → b → c → a", p.String())

	open := tour.Path{"a", "b"}
	assert.False(t, open.Closed())
	assert.Equal(t, open, open.Ring())
	assert.False(t, tour.Path{"a"}.Closed())

	c := p.Clone()
	c[1] = "z"
	assert.Equal(t, "b", p[1])
	assert.Nil(t, tour.Path(nil).Clone())
}

func TestValidate(t *testing.T) {
	g := mustBuild(t, nil, builder.Cycle(4))

	require.NoError(t, tour.Validate(g, tour.Path{"0", "1", "2", "3", "0"}))
	require.NoError(t, tour.Validate(g, tour.Path{"2", "1", "0", "3", "2"}))

	cases := []struct {
		name string
		path tour.Path
		want error
	}{
		{"empty", nil, tour.ErrPathTooShort},
		{"single", tour.Path{"0"}, tour.ErrPathTooShort},
		{"open", tour.Path{"0", "1", "2", "3"}, tour.ErrPathNotClosed},
		{"unknown", tour.Path{"0", "1", "9", "3", "0"}, tour.ErrUnknownVertex},
		{"repeat", tour.Path{"0", "1", "0", "1", "0"}, tour.ErrRepeatedVertex},
		{"partial", tour.Path{"0", "1", "2", "0"}, tour.ErrMissingVertex},
		{"chord", tour.Path{"0", "2", "1", "3", "0"}, tour.ErrMissingEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tour.Validate(g, tc.path), tc.want)
		})
	}
}

func TestValidateSimple(t *testing.T) {
	g := mustBuild(t, nil, builder.PathGraph(4))

	require.NoError(t, tour.ValidateSimple(g, tour.Path{"1"}))
	require.NoError(t, tour.ValidateSimple(g, tour.Path{"1", "2", "3"}))
	require.ErrorIs(t, tour.ValidateSimple(g, nil), tour.ErrPathTooShort)
	require.ErrorIs(t, tour.ValidateSimple(g, tour.Path{"1", "2", "3", "1"}), tour.ErrMissingEdge)
	require.ErrorIs(t, tour.ValidateSimple(g, tour.Path{"1", "2", "3", "2"}), tour.ErrRepeatedVertex)
	require.ErrorIs(t, tour.ValidateSimple(g, tour.Path{"0", "2"}), tour.ErrMissingEdge)
	require.ErrorIs(t, tour.ValidateSimple(g, tour.Path{"x"}), tour.ErrUnknownVertex)

	ring := mustBuild(t, nil, builder.Cycle(3))
	require.NoError(t, tour.ValidateSimple(ring, tour.Path{"0", "1", "2", "0"}))
}

func TestCost(t *testing.T) {
	g := mustBuild(t, nil, builder.Reference())

	cost, err := tour.Cost(g, tour.Path{"0", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, 8.0, cost)

	cost, err = tour.Cost(g, tour.Path{"3"})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = tour.Cost(g, tour.Path{"0", "6"})
	require.ErrorIs(t, err, tour.ErrMissingEdge)
}

func TestHasEdge(t *testing.T) {
	p := tour.Path{"0", "1", "2", "0"}
	assert.True(t, tour.HasEdge(p, "1", "0"))
	assert.True(t, tour.HasEdge(p, "0", "2"))
	assert.False(t, tour.HasEdge(p, "1", "3"))
	assert.False(t, tour.HasEdge(tour.Path{"0"}, "0", "0"))
}

func TestRotate(t *testing.T) {
	p := tour.Path{"2", "1", "0", "3", "2"}

	got, err := tour.Rotate(p, "0")
	require.NoError(t, err)
	assert.Equal(t, tour.Path{"0", "3", "2", "1", "0"}, got)
	assert.Equal(t, tour.Path{"2", "1", "0", "3", "2"}, p, "input untouched")

	same, err := tour.Rotate(p, "2")
	require.NoError(t, err)
	assert.Equal(t, p, same)

	_, err = tour.Rotate(tour.Path{"0", "1"}, "0")
	require.ErrorIs(t, err, tour.ErrPathNotClosed)

	_, err = tour.Rotate(p, "9")
	require.ErrorIs(t, err, tour.ErrUnknownVertex)
}
