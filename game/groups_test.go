package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *Board, color Color, vertices ...string) {
	t.Helper()
	for _, vertex := range vertices {
		at, ok := ParseIntersection(vertex)
		require.True(t, ok, "bad vertex %q", vertex)
		require.True(t, b.PlaceStone(at, color), "could not place at %q", vertex)
	}
}

func at(t *testing.T, vertex string) Intersection {
	t.Helper()
	in, ok := ParseIntersection(vertex)
	require.True(t, ok, "bad vertex %q", vertex)
	return in
}

func TestFindGroupSingleStone(t *testing.T) {
	b := New(Size19)
	place(t, b, Black, "D4")

	group, ok := b.FindGroup(at(t, "D4"), Black)
	require.True(t, ok)
	require.Len(t, group.Stones, 1)
	require.Len(t, group.Liberties, 4, "a lone center stone has four liberties")
}

func TestFindGroupCornerStone(t *testing.T) {
	b := New(Size9)
	place(t, b, White, "A1")

	group, ok := b.FindGroup(at(t, "A1"), White)
	require.True(t, ok)
	require.Len(t, group.Stones, 1)
	require.Len(t, group.Liberties, 2, "a corner stone has two liberties")
}

func TestFindGroupConnectedStones(t *testing.T) {
	b := New(Size19)
	place(t, b, Black, "D4", "E4", "D5")
	place(t, b, White, "C4", "D3")

	group, ok := b.FindGroup(at(t, "D4"), Black)
	require.True(t, ok)
	require.Len(t, group.Stones, 3, "flood fill should find the whole group")
	// Liberties: E5, D6, C5, F4, E3. C4 and D3 are occupied by White.
	require.Len(t, group.Liberties, 5)
	require.NotContains(t, group.Liberties, at(t, "C4"))
	require.NotContains(t, group.Liberties, at(t, "D3"))
}

func TestFindGroupEmptySeed(t *testing.T) {
	b := New(Size9)

	group, ok := b.FindGroup(at(t, "E5"), Black)
	require.True(t, ok)
	require.Empty(t, group.Stones, "an empty seed yields no stones")
	require.Equal(t, []Intersection{at(t, "E5")}, group.Liberties)
}

func TestFindGroupWrongColorSeed(t *testing.T) {
	b := New(Size9)
	place(t, b, White, "E5")

	group, ok := b.FindGroup(at(t, "E5"), Black)
	require.True(t, ok)
	require.Empty(t, group.Stones)
	require.Empty(t, group.Liberties)
}

func TestFindGroupOutOfRangeSeed(t *testing.T) {
	b := New(Size9)
	_, ok := b.FindGroup(Intersection{Col: 12, Row: 4}, Black)
	require.False(t, ok)
}

func TestFindGroupFullBoard(t *testing.T) {
	// Fill the whole 19x19 board with one color; the flood fill must stay
	// iterative and find all 361 stones.
	b := New(Size19)
	for row := 1; row <= 19; row++ {
		for col := 0; col < 19; col++ {
			require.True(t, b.PlaceStone(Intersection{Col: col, Row: row}, Black))
		}
	}

	group, ok := b.FindGroup(Intersection{Col: 0, Row: 1}, Black)
	require.True(t, ok)
	require.Len(t, group.Stones, 361)
	require.Empty(t, group.Liberties)
}
