package bids

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Admission errors
var (
	ErrAuctionNotActive  = errors.New("auction is not accepting bids")
	ErrItemSold          = fmt.Errorf("%w: item has been sold", ErrAuctionNotActive)
	ErrItemNotListed     = fmt.Errorf("%w: item is not listed", ErrAuctionNotActive)
	ErrBidTooLow         = errors.New("bid amount is below the minimum acceptable bid")
	ErrBuyNowUnavailable = errors.New("buy now is not available for this item")
	ErrInvalidBidAmount  = errors.New("bid amount must be positive, at most 9999999999.99, with at most 2 decimal places")
	ErrInvalidGuess      = errors.New("guess must be greater than 0 and at most 100000")
	ErrInvalidBidder     = errors.New("bidder email and name are required")
	ErrTransientStorage  = errors.New("temporary storage failure, please try again")
	ErrOrderNotFound     = errors.New("order not found")
)

// BidTooLowError carries the minimum the bidder has to offer instead
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("%s: minimum is %s", ErrBidTooLow, e.Minimum.StringFixed(2))
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}
