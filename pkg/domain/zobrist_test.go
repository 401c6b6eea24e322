package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
)

func TestZobristTableDeterministicForSameSeed(t *testing.T) {
	space := domain.NewSpace(9)
	a := domain.NewZobristTable(space, 7)
	b := domain.NewZobristTable(space, 7)

	boardA := domain.NewBoard(space, a)
	boardB := domain.NewBoard(space, b)

	c, _ := space.Get(3, 3)
	boardA.Set(c, domain.Black)
	boardB.Set(c, domain.Black)

	assert.Equal(t, boardA.ZobristHash(), boardB.ZobristHash())
}

func TestZobristTableDifferentSeedsDiverge(t *testing.T) {
	space := domain.NewSpace(9)
	a := domain.NewZobristTable(space, 1)
	b := domain.NewZobristTable(space, 2)

	boardA := domain.NewBoard(space, a)
	boardB := domain.NewBoard(space, b)

	c, _ := space.Get(3, 3)
	boardA.Set(c, domain.Black)
	boardB.Set(c, domain.Black)

	assert.NotEqual(t, boardA.ZobristHash(), boardB.ZobristHash())
}
