package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/board"
)

// BoardSize is the number of squares on the standard board.
const BoardSize = 20

// Board is the circular sequence of properties. The sequence is fixed once
// built; only ownership mutates.
type Board struct {
	properties []*Property
}

// newBoard builds a board from static property data in the given order.
func newBoard(data []models.Property) *Board {
	if len(data) == 0 {
		panic("game: board needs at least one property")
	}
	b := &Board{properties: make([]*Property, len(data))}
	for i, d := range data {
		b.properties[i] = &Property{
			Position: i,
			Name:     d.Name,
			Price:    d.Price,
			Rent:     d.Rent,
		}
	}
	return b
}

// NewStandardBoard builds the 20-square board.
func NewStandardBoard() *Board {
	return newBoard(board.LoadProperties())
}

// Size returns the number of squares.
func (b *Board) Size() int { return len(b.properties) }

// PropertyAt returns the square at position.
func (b *Board) PropertyAt(position int) *Property {
	if position < 0 || position >= len(b.properties) {
		panic(fmt.Sprintf("game: position %d outside board of %d", position, len(b.properties)))
	}
	return b.properties[position]
}

// Properties returns the squares in board order.
func (b *Board) Properties() []*Property {
	out := make([]*Property, len(b.properties))
	copy(out, b.properties)
	return out
}

// Advance moves roll squares forward from current. wrapped is true when the
// move reached or passed the starting square.
func (b *Board) Advance(current, roll int) (next int, wrapped bool) {
	sum := current + roll
	return sum % len(b.properties), sum >= len(b.properties)
}
