package repository

import (
	"cinevoice/internal/app/model"
)

// ExchangeDAO persists completed audio exchanges
type ExchangeDAO interface {
	Close() error

	// Record stores one exchange and returns its ID
	Record(exchange *model.Exchange) (int, error)

	// List returns exchanges newest first
	List(limit, offset int) ([]model.Exchange, error)

	// Count returns the total number of recorded exchanges
	Count() (int, error)
}
