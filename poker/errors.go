package poker

import "errors"

var (
	// ErrInvalidCardCode is returned when a card token is not a valid
	// <rank><suit> pair.
	ErrInvalidCardCode = errors.New("invalid card code")

	// ErrInvalidHandFormat is returned when a hand does not hold exactly
	// five valid cards.
	ErrInvalidHandFormat = errors.New("invalid hand format")
)
