package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
)

// boardFromRows builds a 5x5 board from 5 strings, each top row first,
// using 'X' for Black, 'O' for White and '.' for Empty.
func boardFromRows(t *testing.T, rows []string) (*domain.Board, domain.Space) {
	t.Helper()
	size := len(rows)
	space := domain.NewSpace(size)
	zt := domain.NewZobristTable(space, 1)
	board := domain.NewBoard(space, zt)

	for displayRow, line := range rows {
		row := size - 1 - displayRow
		for column, ch := range line {
			c, err := space.Get(column, row)
			require.NoError(t, err)
			switch ch {
			case 'X':
				board.Set(c, domain.Black)
			case 'O':
				board.Set(c, domain.White)
			}
		}
	}
	return board, space
}

func TestGroupCapturedSingleStoneHasZeroLiberties(t *testing.T) {
	board, space := boardFromRows(t, []string{
		".....",
		"..O..",
		".OXO.",
		"..O..",
		".....",
	})

	seed, err := space.Get(2, 2)
	require.NoError(t, err)

	group := domain.NewGroup(board, seed)
	assert.Equal(t, domain.Black, group.Color())
	assert.Equal(t, 0, group.Liberties())
	assert.Equal(t, 1, group.Len())
	assert.True(t, group.BordersWhite())
	assert.False(t, group.BordersBlack())
}

func TestGroupMultiStoneGroupMergesLiberties(t *testing.T) {
	board, space := boardFromRows(t, []string{
		".....",
		".....",
		".XX..",
		".....",
		".....",
	})

	seed, err := space.Get(1, 2)
	require.NoError(t, err)

	group := domain.NewGroup(board, seed)
	assert.Equal(t, 2, group.Len())
	assert.Equal(t, 6, group.Liberties())
}

func TestGroupTemporarilyUnplayableCollapsesToEmptyColor(t *testing.T) {
	space := domain.NewSpace(5)
	zt := domain.NewZobristTable(space, 1)
	board := domain.NewBoard(space, zt)

	c, _ := space.Get(0, 0)
	board.Set(c, domain.TemporarilyUnplayable)

	group := domain.NewGroup(board, c)
	assert.Equal(t, domain.Empty, group.Color())
}

func TestGroupEqualsComparesAllFiveFields(t *testing.T) {
	boardA, spaceA := boardFromRows(t, []string{
		".....",
		".....",
		".XX..",
		".....",
		".....",
	})
	boardB, spaceB := boardFromRows(t, []string{
		".....",
		".....",
		".XX..",
		".....",
		".....",
	})

	seedA, _ := spaceA.Get(1, 2)
	seedB, _ := spaceB.Get(1, 2)

	groupA := domain.NewGroup(boardA, seedA)
	groupB := domain.NewGroup(boardB, seedB)
	assert.True(t, groupA.Equals(groupB))

	boardB.Set(seedB, domain.Empty)
	groupC := domain.NewGroup(boardB, seedB)
	assert.False(t, groupA.Equals(groupC))
}
