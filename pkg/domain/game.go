package domain

import (
	"fmt"
	"strconv"
)

// koEntry is the minimal ancestor snapshot needed to decide a ko violation:
// the board it occurred on, the player who was to move there, and whether
// the move that produced it was a pass. Storing this instead of a full
// *Game avoids the cyclic Game->koLookup->Game reference (spec.md §9,
// "Cyclic references... break by storing in the ko-lookup only what is
// required for ko decisions").
type koEntry struct {
	board               *Board
	currentPlayer       Color
	previousMoveWasPass bool
}

// Game is an immutable snapshot of a Go position and its lineage:
// ruleset, komi, handicap, whose turn it is, the board before and after
// the move that produced this snapshot, capture counts, and a ko-lookup
// sufficient to enforce SIMPLE/POSITIONAL/SITUATIONAL super-ko (spec.md
// §3, §4.E). Constructed either as a root (NewGame) or as the result of
// Play on a previous Game.
type Game struct {
	space   Space
	zt      *ZobristTable
	ruleset Ruleset
	komi    float64

	handicapStones map[Coordinate]struct{}

	previousState *Game
	previousMove  Move
	hasPrevious   bool
	movesPlayed   int

	currentPlayer Color

	capturesByBlack, capturesByWhite int

	initial *Board
	board   *Board

	kos      map[Coordinate]struct{}
	koLookup map[ZobristHash][]koEntry
}

// NewGame constructs a root Game: an initial board with any handicap
// stones placed (Black stones, White to move first), per spec.md §3/§4.E.
func NewGame(ruleset Ruleset, komi float64, space Space, handicapStones []Coordinate, seed int64) *Game {
	zt := NewZobristTable(space, seed)
	board := NewBoard(space, zt)

	g := &Game{space: space, zt: zt, ruleset: ruleset, komi: komi}

	if len(handicapStones) > 0 {
		g.currentPlayer = White
		g.handicapStones = make(map[Coordinate]struct{}, len(handicapStones))
		for _, c := range handicapStones {
			board.Set(c, Black)
			g.handicapStones[c] = struct{}{}
		}

		// Mirror suicide-marking for the first move the same way every
		// later move is prepared, using a throwaway Game standing in for
		// "Black just played the handicap stones" with empty ko history.
		setup := &Game{space: space, ruleset: ruleset, currentPlayer: Black, koLookup: map[ZobristHash][]koEntry{}}
		board, _ = setup.prepareBoardForNextPlayer(board)
	} else {
		g.currentPlayer = Black
	}

	board.Lock()
	g.board = board
	g.initial = board

	if ruleset.KoRule != KoSimple {
		g.koLookup = map[ZobristHash][]koEntry{
			board.ZobristHash(): {{board: board, currentPlayer: g.currentPlayer, previousMoveWasPass: false}},
		}
	} else {
		g.koLookup = map[ZobristHash][]koEntry{}
	}

	return g
}

// Space returns the board geometry this Game is played on.
func (g *Game) Space() Space { return g.space }

// Ruleset returns the Game's ruleset.
func (g *Game) Ruleset() Ruleset { return g.ruleset }

// Komi returns the Game's komi.
func (g *Game) Komi() float64 { return g.komi }

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() Color { return g.currentPlayer }

// MovesPlayed returns the number of moves (including passes) since the
// root.
func (g *Game) MovesPlayed() int { return g.movesPlayed }

// PreviousState returns the Game this one succeeds, or nil at the root.
func (g *Game) PreviousState() *Game { return g.previousState }

// PreviousMove returns the move that produced this Game and true, or the
// zero Move and false at the root.
func (g *Game) PreviousMove() (Move, bool) { return g.previousMove, g.hasPrevious }

// CapturesByBlack returns Black's total capture count.
func (g *Game) CapturesByBlack() int { return g.capturesByBlack }

// CapturesByWhite returns White's total capture count.
func (g *Game) CapturesByWhite() int { return g.capturesByWhite }

// Board returns a copy of the current board.
func (g *Game) Board() *Board { return g.board.Fork() }

// Initial returns a copy of the initial (root) board.
func (g *Game) Initial() *Board { return g.initial.Fork() }

// Kos returns the set of intersections currently blocked by ko.
func (g *Game) Kos() map[Coordinate]struct{} {
	ret := make(map[Coordinate]struct{}, len(g.kos))
	for c := range g.kos {
		ret[c] = struct{}{}
	}
	return ret
}

// HandicapStones returns the set of handicap stone placements.
func (g *Game) HandicapStones() map[Coordinate]struct{} {
	ret := make(map[Coordinate]struct{}, len(g.handicapStones))
	for c := range g.handicapStones {
		ret[c] = struct{}{}
	}
	return ret
}

// LegalMoves returns every Empty intersection plus Pass (spec.md §4.E);
// it does not itself filter suicide or ko -- those intersections are
// already marked TemporarilyUnplayable on g.board, so they are naturally
// excluded here because they are not Empty.
func (g *Game) LegalMoves() map[Move]struct{} {
	legal := map[Move]struct{}{PassMove: {}}
	for _, c := range g.space.All() {
		if g.board.Get(c) == Empty {
			legal[CoordMove(c)] = struct{}{}
		}
	}
	return legal
}

// Play applies move and returns the resulting Game. Occupied or
// currently-unplayable (suicide/ko) intersections are rejected with
// ErrIllegalMove -- both produce a non-Empty cell, so the single check
// below enforces the stricter invariant spec.md §9 calls out as optional.
func (g *Game) Play(move Move) (*Game, error) {
	c, ok := move.Coordinate()
	if !ok {
		return g.pass(), nil
	}
	if g.board.Get(c) != Empty {
		return nil, fmt.Errorf("%w: %v is occupied or unplayable", ErrIllegalMove, g.space.Label(move))
	}
	return g.performMove(c), nil
}

func (g *Game) pass() *Game {
	prepared, kos := g.prepareBoardForNextPlayer(g.board)
	return g.newSuccessor(PassMove, 0, prepared, kos)
}

func (g *Game) performMove(c Coordinate) *Game {
	next := g.board.Fork()
	next.Set(c, g.currentPlayer)

	additional, _ := removeCaptures(next, g.space, c, g.currentPlayer)

	prepared, kos := g.prepareBoardForNextPlayer(next)
	return g.newSuccessor(CoordMove(c), additional, prepared, kos)
}

// prepareBoardForNextPlayer paints every counts-as-liberty intersection of
// board as Empty (playable) or TemporarilyUnplayable (suicide or ko) for
// the player about to move next, and returns the set of intersections
// that were blocked specifically by ko (spec.md §4.E).
func (g *Game) prepareBoardForNextPlayer(board *Board) (*Board, map[Coordinate]struct{}) {
	next := board.Fork()
	nextPlayer := g.currentPlayer.Opposite()
	kos := map[Coordinate]struct{}{}

	for _, coordinate := range g.space.All() {
		if !next.Get(coordinate).CountsAsLiberty() {
			continue
		}

		playable := true

		scratch := board.Fork()
		scratch.Set(coordinate, nextPlayer)
		captures, _ := removeCaptures(scratch, g.space, coordinate, nextPlayer)
		if captures == 0 {
			if NewGroup(scratch, coordinate).Liberties() == 0 {
				playable = false
			}
		}

		if playable && g.violatesKoRule(g.currentPlayer, scratch) {
			playable = false
			kos[coordinate] = struct{}{}
		}

		if playable {
			next.Set(coordinate, Empty)
		} else {
			next.Set(coordinate, TemporarilyUnplayable)
		}
	}

	return next, kos
}

// violatesKoRule reports whether board recreates a position barred by the
// ruleset's ko rule. playerToMoveNext is the player who would be on move
// immediately after board (i.e. g.currentPlayer, since board already has
// the hypothetical next player's stone on it) -- needed only for the
// SITUATIONAL variant.
func (g *Game) violatesKoRule(playerToMoveNext Color, board *Board) bool {
	entries, ok := g.koLookup[board.ZobristHash()]
	if !ok {
		return false
	}

	if g.ruleset.KoRule == KoSituational {
		for _, e := range entries {
			if e.board.IsSameAs(board) && e.currentPlayer == playerToMoveNext && !e.previousMoveWasPass {
				return true
			}
		}
		return false
	}

	for _, e := range entries {
		if e.board.IsSameAs(board) {
			return true
		}
	}
	return false
}

// removeCaptures erases every opponent group bordering `around` that has
// been reduced to zero liberties by the stone `playedBy` just placed
// there, updating the board's Zobrist hash as it goes (spec.md §4.E).
// Uses Space.Neighbors rather than the four inline boundary checks the
// original source repeats per direction.
func removeCaptures(board *Board, space Space, around Coordinate, playedBy Color) (int, map[Coordinate]struct{}) {
	captures := 0
	captured := map[Coordinate]struct{}{}
	opposite := playedBy.Opposite()

	for _, neighbor := range space.Neighbors(around) {
		if board.Get(neighbor) != opposite {
			continue
		}
		group := NewGroup(board, neighbor)
		if group.Liberties() != 0 {
			continue
		}
		for m := range group.Members() {
			board.Set(m, Empty)
			captured[m] = struct{}{}
		}
		captures += group.Len()
	}

	return captures, captured
}

func (g *Game) newSuccessor(move Move, additionalCaptures int, board *Board, kos map[Coordinate]struct{}) *Game {
	board.Lock()

	next := &Game{
		space:           g.space,
		zt:              g.zt,
		ruleset:         g.ruleset,
		komi:            g.komi,
		handicapStones:  g.handicapStones,
		previousState:   g,
		previousMove:    move,
		hasPrevious:     true,
		movesPlayed:     g.movesPlayed + 1,
		currentPlayer:   g.currentPlayer.Opposite(),
		capturesByBlack: g.capturesByBlack,
		capturesByWhite: g.capturesByWhite,
		board:           board,
		kos:             kos,
	}

	if additionalCaptures > 0 {
		if g.currentPlayer == Black {
			next.capturesByBlack += additionalCaptures
		} else {
			next.capturesByWhite += additionalCaptures
		}
	}

	entry := koEntry{board: board, currentPlayer: next.currentPlayer, previousMoveWasPass: move.IsPass()}

	if g.ruleset.KoRule == KoSimple {
		next.koLookup = map[ZobristHash][]koEntry{}
		if !move.IsPass() {
			next.koLookup[board.ZobristHash()] = []koEntry{entry}
		}
	} else {
		merged := make(map[ZobristHash][]koEntry, len(g.koLookup))
		for k, v := range g.koLookup {
			cp := make([]koEntry, len(v))
			copy(cp, v)
			merged[k] = cp
		}
		hash := board.ZobristHash()
		merged[hash] = append(merged[hash], entry)
		next.koLookup = merged
	}

	return next
}

// CanonicalCode returns a position fingerprint invariant to board
// symmetry, suitable for detecting transformationally-equivalent moves
// (spec.md §4.E, §4.H): the ruleset, komi, player to move, running score
// differential under TERRITORY scoring, the initial board encoded under
// the current board's canonical orientation, and the current board's own
// canonical encoding.
func (g *Game) CanonicalCode() string {
	code := fmt.Sprintf("%v_%v_%c_", g.ruleset.Command, formatKomi(g.komi), g.currentPlayer.Letter())

	if g.ruleset.Scoring == ScoringTerritory {
		code += fmt.Sprintf("%v_", g.capturesByBlack-g.capturesByWhite)
	}

	var currentBoardCode string
	if g.movesPlayed == 0 {
		currentBoardCode = g.board.CanonicalCode()
		code += currentBoardCode
	} else {
		code += g.initial.GetCodeFor(g.board.CanonicalOrientation())
	}

	if currentBoardCode == "" {
		currentBoardCode = g.board.CanonicalCode()
	}
	code += "_" + currentBoardCode

	return code
}

// CanonicalOrientation returns the current board's canonical orientation.
func (g *Game) CanonicalOrientation() Orientation {
	return g.board.CanonicalOrientation()
}

func formatKomi(komi float64) string {
	return strconv.FormatFloat(komi, 'g', -1, 64)
}

func (g *Game) String() string {
	return fmt.Sprintf(
		"Game[%v, move %v, %v to play, captures B=%v W=%v]",
		g.ruleset.Command, g.movesPlayed, g.currentPlayer, g.capturesByBlack, g.capturesByWhite,
	)
}
