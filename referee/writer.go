package referee

import (
	"fmt"
	"io"

	"github.com/sylvanbot/sylvan/move"
)

// WriteMove writes the single line answering a turn.
func WriteMove(w io.Writer, m *move.Move) error {
	_, err := fmt.Fprintln(w, m.String())
	return err
}
