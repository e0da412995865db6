package game

import "errors"

// Sentinel errors for table and betting operations. Callers discriminate
// with errors.Is; every operation validates before mutating, so a returned
// error means no cards or chips moved.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("name already seated")
	ErrShoeEmpty         = errors.New("shoe empty")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrIllegalAction     = errors.New("illegal action")
)
