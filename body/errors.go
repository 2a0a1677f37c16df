package body

import "errors"

// Input validation errors, wrapped with the offending value
var (
	ErrInvalidSize     = errors.New("invalid segment size")
	ErrInvalidDiameter = errors.New("invalid appendage diameter")
	ErrInvalidLength   = errors.New("invalid appendage length")
	ErrInvalidFill     = errors.New("invalid fill factor")
	ErrInvalidRange    = errors.New("invalid range")
	ErrUnknownStrategy = errors.New("unknown selection strategy")
	ErrUnknownShape    = errors.New("unknown segment shape")
	ErrTooManySlots    = errors.New("too many mount slots")
)
