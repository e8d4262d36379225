package api

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
)

// MinimumBidHeader carries the exact minimum after a BidTooLow rejection
const MinimumBidHeader = "Minimum-Bid"

// toConnectError maps domain errors to connect codes. Unknown errors are
// logged and returned as Internal without their message.
func toConnectError(ctx context.Context, logger *slog.Logger, procedure string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := codeOf(err)
	if code == connect.CodeInternal {
		logger.ErrorContext(ctx, "Request failed", "procedure", procedure, "error", err)
		return connect.NewError(code, errors.New("internal error"))
	}

	cerr := connect.NewError(code, err)
	var tooLow *bids.BidTooLowError
	if errors.As(err, &tooLow) {
		cerr.Meta().Set(MinimumBidHeader, tooLow.Minimum.StringFixed(2))
	}
	return cerr
}

func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, auctions.ErrAuctionNotFound),
		errors.Is(err, auctions.ErrItemNotFound),
		errors.Is(err, bids.ErrOrderNotFound):
		return connect.CodeNotFound
	case errors.Is(err, auctions.ErrUnauthorized):
		return connect.CodePermissionDenied
	case errors.Is(err, auctions.ErrValidation),
		errors.Is(err, bids.ErrInvalidBidAmount),
		errors.Is(err, bids.ErrInvalidGuess),
		errors.Is(err, bids.ErrInvalidBidder),
		errors.Is(err, projections.ErrNotDemo):
		return connect.CodeInvalidArgument
	case errors.Is(err, auctions.ErrInvalidState),
		errors.Is(err, bids.ErrAuctionNotActive),
		errors.Is(err, bids.ErrBidTooLow),
		errors.Is(err, bids.ErrBuyNowUnavailable),
		errors.Is(err, projections.ErrResultsNotReady):
		return connect.CodeFailedPrecondition
	case errors.Is(err, bids.ErrTransientStorage),
		errors.Is(err, context.DeadlineExceeded):
		return connect.CodeUnavailable
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	default:
		return connect.CodeInternal
	}
}
