package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrInvalidRuleSet = errors.New("invalid rule set")
	ErrIOUnavailable  = errors.New("user io is unavailable")
)
