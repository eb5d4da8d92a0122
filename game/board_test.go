package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for _, size := range []BoardSize{Size9, Size13, Size19} {
		b := New(size)

		require.Equal(t, size, b.Size())
		require.Equal(t, Black, b.Side(), "Black moves first")
		require.Equal(t, DefaultKomi, b.Komi())
		require.Equal(t, 0, b.MoveNumber())

		_, active := b.Ko()
		require.False(t, active, "a fresh board has no ko")

		black, white := b.Captures()
		require.Zero(t, black)
		require.Zero(t, white)
	}
}

func TestNewBoardBorderIsOffboard(t *testing.T) {
	b := New(Size9)
	stride := int(Size9) + 2

	for row := 0; row < stride; row++ {
		for col := 0; col < stride; col++ {
			index := row*stride + col
			in, playable := IntersectionAt(index, Size9)
			if playable {
				require.Equal(t, CellEmpty, b.At(in))
			}
		}
	}

	// Every coordinate outside the playable range reads as offboard.
	require.Equal(t, CellOffboard, b.At(Intersection{Col: 0, Row: 0}))
	require.Equal(t, CellOffboard, b.At(Intersection{Col: 9, Row: 5}))
	require.Equal(t, CellOffboard, b.At(Intersection{Col: 5, Row: 10}))
}

func TestBoardCopyIsolation(t *testing.T) {
	b := New(Size19)
	require.True(t, b.PlaceStone(Intersection{Col: 3, Row: 4}, Black))

	dup := b.Copy()
	require.Equal(t, b.Fingerprint(), dup.Fingerprint(), "copy should match the original")

	require.True(t, dup.Play(Place(Intersection{Col: 15, Row: 16}, White)))
	require.NotEqual(t, b.Fingerprint(), dup.Fingerprint(), "mutating the copy should not touch the original")
	require.Equal(t, CellEmpty, b.At(Intersection{Col: 15, Row: 16}))

	require.True(t, b.Play(Place(Intersection{Col: 2, Row: 2}, Black)))
	require.Equal(t, CellEmpty, dup.At(Intersection{Col: 2, Row: 2}), "mutating the original should not touch the copy")
}

func TestPassOnlyFlipsSideAndCounter(t *testing.T) {
	b := New(Size9)
	require.True(t, b.PlaceStone(Intersection{Col: 4, Row: 5}, Black))

	grid := b.Fingerprint()
	blackBefore, whiteBefore := b.Captures()

	require.True(t, b.Play(Pass()))

	require.Equal(t, grid, b.Fingerprint(), "pass must not move stones")
	require.Equal(t, White, b.Side())
	require.Equal(t, 1, b.MoveNumber())
	require.Equal(t, MovePass, b.LastMove().Kind)

	black, white := b.Captures()
	require.Equal(t, blackBefore, black)
	require.Equal(t, whiteBefore, white)

	_, active := b.Ko()
	require.False(t, active)

	require.True(t, b.Play(Pass()))
	require.Equal(t, Black, b.Side(), "two passes return the turn")
	require.Equal(t, 2, b.MoveNumber())
}

func TestResignNeverCommits(t *testing.T) {
	b := New(Size9)
	before := b.Fingerprint()

	require.False(t, b.Play(Resign()), "resign places nothing")
	require.Equal(t, before, b.Fingerprint())
	require.Equal(t, 0, b.MoveNumber())
}

func TestPlaceStone(t *testing.T) {
	b := New(Size9)
	at := Intersection{Col: 2, Row: 3}

	require.True(t, b.PlaceStone(at, White))
	require.Equal(t, CellWhite, b.At(at))
	require.Equal(t, 0, b.MoveNumber(), "direct placement skips game bookkeeping")
	require.Equal(t, Black, b.Side())

	require.False(t, b.PlaceStone(at, Black), "occupied cell rejects direct placement")
	require.False(t, b.PlaceStone(Intersection{Col: 12, Row: 3}, Black), "out of range rejects direct placement")
}

func TestClear(t *testing.T) {
	b := New(Size13)
	b.SetKomi(0.5)
	require.True(t, b.Play(Place(Intersection{Col: 3, Row: 4}, Black)))
	require.True(t, b.Play(Place(Intersection{Col: 9, Row: 10}, White)))

	b.Clear()

	require.Equal(t, New(Size13).Fingerprint(), b.Fingerprint())
	require.Equal(t, Black, b.Side())
	require.Equal(t, 0, b.MoveNumber())
	require.Equal(t, 0.5, b.Komi(), "clear keeps the komi")

	black, white := b.Captures()
	require.Zero(t, black)
	require.Zero(t, white)
}
