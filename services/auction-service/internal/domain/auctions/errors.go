package auctions

import (
	"errors"
	"fmt"
	"strings"
)

// Service errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrUnauthorized    = errors.New("unauthorized: only the seller can perform this action")
	ErrInvalidState    = errors.New("invalid auction state")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists every unmet condition so the seller can fix them all
// at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func invalidState(action string, status Status) error {
	return fmt.Errorf("%w: cannot %s an auction that is %s", ErrInvalidState, action, status)
}
