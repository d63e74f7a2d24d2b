// Package tilegame implements a two-player 3x3 tile duel: players
// alternate claiming cells, and each adjacent pair of cells pays its
// bonus to the first player when one player claimed both cells, or to
// the second player when the claimants differ. It satisfies the negamax capability and serves as
// the stock example for the minimax and alpha-beta drivers.
package tilegame

import (
	"fmt"
	"io"
)

// Cell is one move: the row and column a player claims.
type Cell struct {
	Row, Col int
}

// Board is the full game state. Vertical holds the bonus for each
// vertically adjacent pair, Horizontal for each horizontally adjacent
// pair. visited records the 1-based turn a cell was claimed, 0 for
// unclaimed; odd turns belong to the first player.
type Board struct {
	Vertical   [2][3]int
	Horizontal [3][2]int
	visited    [3][3]int
	turn       int
}

// New returns an empty board over the given pair bonuses.
func New(vertical [2][3]int, horizontal [3][2]int) *Board {
	return &Board{Vertical: vertical, Horizontal: horizontal, turn: 1}
}

// Parse reads the six vertical bonuses then the six horizontal ones,
// whitespace separated.
func Parse(r io.Reader) (*Board, error) {
	b := &Board{turn: 1}
	for i := range b.Vertical {
		for j := range b.Vertical[i] {
			if _, err := fmt.Fscan(r, &b.Vertical[i][j]); err != nil {
				return nil, fmt.Errorf("tilegame: bad vertical bonus (%d,%d): %w", i, j, err)
			}
		}
	}
	for i := range b.Horizontal {
		for j := range b.Horizontal[i] {
			if _, err := fmt.Fscan(r, &b.Horizontal[i][j]); err != nil {
				return nil, fmt.Errorf("tilegame: bad horizontal bonus (%d,%d): %w", i, j, err)
			}
		}
	}
	return b, nil
}

// IsFinished reports whether all nine cells are claimed.
func (b *Board) IsFinished() bool {
	return b.turn == 10
}

// Turn returns the 1-based turn about to be played.
func (b *Board) Turn() int {
	return b.turn
}

// Visited returns the turn the cell was claimed on, 0 if unclaimed.
func (b *Board) Visited(row, col int) int {
	return b.visited[row][col]
}

// Scores tallies the settled pair bonuses for both players. A pair is
// settled once both its cells are claimed; same-parity claimants give
// the bonus to the first player, mixed parity to the second.
func (b *Board) Scores() (first, second int) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if b.visited[i][j] != 0 && b.visited[i+1][j] != 0 {
				if b.visited[i][j]%2 == b.visited[i+1][j]%2 {
					first += b.Vertical[i][j]
				} else {
					second += b.Vertical[i][j]
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if b.visited[i][j] != 0 && b.visited[i][j+1] != 0 {
				if b.visited[i][j]%2 == b.visited[i][j+1]%2 {
					first += b.Horizontal[i][j]
				} else {
					second += b.Horizontal[i][j]
				}
			}
		}
	}
	return first, second
}

// Evaluate scores the position for the side to move.
func (b *Board) Evaluate() int {
	first, second := b.Scores()
	if b.turn%2 == 1 {
		return first - second
	}
	return second - first
}

// Expand pushes every unclaimed cell.
func (b *Board) Expand(push func(Cell)) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b.visited[i][j] == 0 {
				push(Cell{Row: i, Col: j})
			}
		}
	}
}

// Apply claims the cell for the side to move.
func (b *Board) Apply(a Cell) {
	b.visited[a.Row][a.Col] = b.turn
	b.turn++
}

// Rollback releases the cell claimed by Apply.
func (b *Board) Rollback(a Cell) {
	b.visited[a.Row][a.Col] = 0
	b.turn--
}
