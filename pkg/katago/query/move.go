package query

import (
	"encoding/json"
	"fmt"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
)

// MoveDTO is one entry of a Query's "moves" list: [player, label]
// (spec.md §6). Grounded on katago/query/move.py. Label is the engine's
// coordinate label ("K10", "pass"), produced via domain.Space.Label.
type MoveDTO struct {
	Player Player
	Label  string
}

// NewMoveDTO builds a MoveDTO from a domain Move played by color, encoding
// the move's label against space.
func NewMoveDTO(color domain.Color, move domain.Move, space domain.Space) MoveDTO {
	return MoveDTO{Player: PlayerOf(color), Label: space.Label(move)}
}

// Move decodes the MoveDTO's label back into a domain.Move.
func (m MoveDTO) Move(space domain.Space) (domain.Move, error) {
	return space.ParseLabel(m.Label)
}

func (m MoveDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(m.Player), m.Label})
}

func (m *MoveDTO) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: malformed move entry: %v", domain.ErrEngineProtocol, err)
	}
	m.Player = Player(pair[0])
	m.Label = pair[1]
	return nil
}
