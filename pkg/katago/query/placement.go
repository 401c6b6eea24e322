package query

import (
	"encoding/json"
	"fmt"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
)

// Placement is one entry of a Query's "initialStones" list: [player, label]
// (spec.md §6). Grounded on katago/query/placement.py.
type Placement struct {
	Player Player
	Label  string
}

// NewPlacement builds a Placement from a handicap stone at c.
func NewPlacement(color domain.Color, c domain.Coordinate, space domain.Space) Placement {
	return Placement{Player: PlayerOf(color), Label: space.Label(domain.CoordMove(c))}
}

func (p Placement) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(p.Player), p.Label})
}

func (p *Placement) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: malformed initial stone entry: %v", domain.ErrEngineProtocol, err)
	}
	p.Player = Player(pair[0])
	p.Label = pair[1]
	return nil
}

func (p Placement) String() string {
	return fmt.Sprintf("[%q,%q]", p.Player, p.Label)
}
