package periodizing

import "errors"

var (
	ErrUnknownPeriod        = errors.New("unknown period selector")
	ErrCustomBoundsRequired = errors.New("custom period requires at least one date")
)
