package checkout

import "errors"

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// ValidationError is a user-facing rejection of checkout input.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}
