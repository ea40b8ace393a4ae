// README: Book aggregate for the catalog module.
package catalog

import (
	"errors"

	"bookbot/internal/types"
)

type Book struct {
	ID       int64
	Title    string
	Author   string
	Price    types.Money
	Stock    int
	Category string
}

var ErrNotFound = errors.New("book not found")
