package api

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/floroz/estate-gavel/pkg/api/auctions/v1/auctionsv1connect"
	"github.com/floroz/estate-gavel/pkg/auth"
	"github.com/floroz/estate-gavel/pkg/rpc"
)

// Mount registers the AuctionService on mux. Seller procedures require a
// bearer token verified by signer.
func Mount(mux *http.ServeMux, h *AuctionServiceHandler, signer *auth.Signer) {
	path, handler := auctionsv1connect.NewAuctionServiceHandler(h,
		connect.WithInterceptors(auth.NewAuthInterceptor(signer, PublicProcedures...)),
		rpc.WithJSON(),
	)
	mux.Handle(path, handler)
}
