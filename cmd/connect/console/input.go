package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"golang.org/x/text/width"
)

// ParseColumn converts a 1 based column typed by a player into a 0 based
// column index. Full-width digits are accepted. A number too large to
// parse is out of range; otherwise the range is checked by the board.
func ParseColumn(token string) (int, error) {
	token = width.Narrow.String(strings.TrimSpace(token))

	n, err := strconv.Atoi(token)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return -1, fmt.Errorf("parse column %q: %w", token, game.ErrOutOfRange)

	case err != nil:
		return -1, fmt.Errorf("parse column %q: %w", token, game.ErrInvalidInput)
	}

	return n - 1, nil
}

func isQuit(token string) bool {
	token = strings.TrimSpace(token)
	return strings.EqualFold(token, "q") || strings.EqualFold(token, "quit")
}
