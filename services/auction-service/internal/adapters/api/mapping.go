package api

import (
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	auctionsv1 "github.com/floroz/estate-gavel/pkg/api/auctions/v1"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/auctions"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/bids"
	"github.com/floroz/estate-gavel/services/auction-service/internal/domain/projections"
)

const dateLayout = "2006-01-02"

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s", field))
	}
	return id, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s: not a decimal amount", field))
	}
	return d, nil
}

func parseOptionalAmount(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseAmount(field, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseOptionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s format", field))
	}
	t = t.UTC()
	return &t, nil
}

func itemSettingsFromProto(s *auctionsv1.ItemAuctionSettings) (auctions.ItemSettings, error) {
	if s == nil {
		return auctions.ItemSettings{}, connect.NewError(connect.CodeInvalidArgument, errors.New("settings are required"))
	}
	var (
		out auctions.ItemSettings
		err error
	)
	if out.StartingBid, err = parseOptionalAmount("starting_bid", s.StartingBid); err != nil {
		return out, err
	}
	if out.MinIncrement, err = parseOptionalAmount("min_increment", s.MinIncrement); err != nil {
		return out, err
	}
	if out.BuyNowPrice, err = parseOptionalAmount("buy_now_price", s.BuyNowPrice); err != nil {
		return out, err
	}
	out.IsListed = s.IsListed
	return out, nil
}

func compsFromProto(in []*auctionsv1.CompInput) ([]auctions.NewComp, error) {
	out := make([]auctions.NewComp, 0, len(in))
	for i, c := range in {
		price, err := parseAmount(fmt.Sprintf("comps[%d].sold_price", i), c.SoldPrice)
		if err != nil {
			return nil, err
		}
		comp := auctions.NewComp{Title: c.Title, Source: c.Source, SoldPrice: price, URL: c.Url}
		if c.SoldDate != "" {
			d, err := time.Parse(dateLayout, c.SoldDate)
			if err != nil {
				return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid comps[%d].sold_date", i))
			}
			comp.SoldDate = &d
		}
		out = append(out, comp)
	}
	return out, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func lotToProto(lot *int) *int32 {
	if lot == nil {
		return nil
	}
	v := int32(*lot)
	return &v
}

func lotFromProto(lot *int32) *int {
	if lot == nil {
		return nil
	}
	v := int(*lot)
	return &v
}

func mapAuctionToProto(a *auctions.Auction) *auctionsv1.Auction {
	out := &auctionsv1.Auction{
		Id:              a.ID.String(),
		SellerId:        a.SellerID.String(),
		Name:            a.Name,
		Status:          string(a.Status),
		IsDemo:          a.IsDemo,
		StartTime:       formatTime(a.StartTime),
		EndTime:         formatTime(a.EndTime),
		ShippingAllowed: a.ShippingAllowed,
		PublishedAt:     formatTime(a.PublishedAt),
		ClosedAt:        formatTime(a.ClosedAt),
		ArchivedAt:      formatTime(a.ArchivedAt),
		CreatedAt:       formatTime(&a.CreatedAt),
		UpdatedAt:       formatTime(&a.UpdatedAt),
	}
	if a.PickupLocation != nil {
		out.PickupLocation = *a.PickupLocation
	}
	return out
}

func mapAuctionsToProto(list []*auctions.Auction) []*auctionsv1.Auction {
	out := make([]*auctionsv1.Auction, len(list))
	for i, a := range list {
		out[i] = mapAuctionToProto(a)
	}
	return out
}

func mapItemToProto(item *auctions.Item) *auctionsv1.Item {
	return &auctionsv1.Item{
		Id:           item.ID.String(),
		AuctionId:    item.AuctionID.String(),
		Title:        item.Title,
		Description:  item.Description,
		Lot:          lotToProto(item.Lot),
		StartingBid:  formatAmount(item.StartingBid),
		MinIncrement: item.MinIncrement.StringFixed(2),
		BuyNowPrice:  formatAmount(item.BuyNowPrice),
		IsListed:     item.IsListed,
		IsSold:       item.IsSold,
		SoldAt:       formatTime(item.SoldAt),
		CreatedAt:    formatTime(&item.CreatedAt),
		UpdatedAt:    formatTime(&item.UpdatedAt),
	}
}

func mapItemsToProto(list []*auctions.Item) []*auctionsv1.Item {
	out := make([]*auctionsv1.Item, len(list))
	for i, item := range list {
		out[i] = mapItemToProto(item)
	}
	return out
}

func mapCompToProto(c *auctions.Comp) *auctionsv1.Comp {
	out := &auctionsv1.Comp{
		Id:        c.ID.String(),
		ItemId:    c.ItemID.String(),
		Title:     c.Title,
		Source:    c.Source,
		SoldPrice: c.SoldPrice.StringFixed(2),
		Url:       c.URL,
	}
	if c.SoldDate != nil {
		out.SoldDate = c.SoldDate.Format(dateLayout)
	}
	return out
}

func mapBidToProto(b *bids.Bid) *auctionsv1.Bid {
	if b == nil {
		return nil
	}
	return &auctionsv1.Bid{
		Id:          b.ID.String(),
		AuctionId:   b.AuctionID.String(),
		ItemId:      b.ItemID.String(),
		Seq:         b.Seq,
		Kind:        string(b.Kind),
		BidderEmail: b.BidderEmail,
		BidderName:  b.BidderName,
		Amount:      b.Amount.StringFixed(2),
		CreatedAt:   formatTime(&b.CreatedAt),
	}
}

func mapOrderToProto(o *bids.Order) *auctionsv1.Order {
	return &auctionsv1.Order{
		Id:         o.ID.String(),
		AuctionId:  o.AuctionID.String(),
		ItemId:     o.ItemID.String(),
		BidId:      o.BidID.String(),
		BuyerEmail: o.BuyerEmail,
		BuyerName:  o.BuyerName,
		Amount:     o.Amount.StringFixed(2),
		OrderType:  string(o.OrderType),
		CreatedAt:  formatTime(&o.CreatedAt),
	}
}

func mapItemBidsToProto(ib *projections.ItemBids) *auctionsv1.ItemBids {
	out := &auctionsv1.ItemBids{
		Item:                 mapItemToProto(ib.Item),
		Bids:                 make([]*auctionsv1.Bid, len(ib.Bids)),
		BidCount:             int32(len(ib.Bids)),
		HighestBid:           mapBidToProto(ib.Highest),
		CurrentPrice:         formatAmount(ib.CurrentPrice),
		AvgCompPrice:         formatAmount(ib.AvgCompPrice),
		SuggestedStartingBid: formatAmount(ib.SuggestedStartingBid),
	}
	for i, b := range ib.Bids {
		out.Bids[i] = mapBidToProto(b)
	}
	if ib.Winner != nil {
		out.Winner = mapBidToProto(ib.Winner.Bid)
		out.WinnerDistance = formatAmount(ib.Winner.Distance)
	}
	return out
}

func mapRankedGuessToProto(g *projections.RankedGuess) *auctionsv1.RankedGuess {
	return &auctionsv1.RankedGuess{
		Bid:        mapBidToProto(g.Bid),
		Difference: g.Difference.StringFixed(2),
	}
}

func mapDemoResultsToProto(r *projections.DemoResults) *auctionsv1.GetDemoResultsResponse {
	out := &auctionsv1.GetDemoResultsResponse{
		AuctionId: r.Auction.ID.String(),
		Items:     make([]*auctionsv1.DemoItemResult, len(r.Items)),
	}
	for i, item := range r.Items {
		res := &auctionsv1.DemoItemResult{
			ItemId:    item.Item.ID.String(),
			Title:     item.Item.Title,
			CompCount: int32(item.CompCount),
			Guesses:   make([]*auctionsv1.RankedGuess, len(item.Guesses)),
		}
		if item.CompCount > 0 {
			res.AvgCompPrice = item.AvgCompPrice.StringFixed(2)
		}
		for j := range item.Guesses {
			res.Guesses[j] = mapRankedGuessToProto(&item.Guesses[j])
		}
		if item.Winner != nil {
			res.Winner = mapRankedGuessToProto(item.Winner)
		}
		out.Items[i] = res
	}
	return out
}

func mapPublicBidToProto(b *projections.PublicBid) *auctionsv1.PublicBid {
	if b == nil {
		return nil
	}
	return &auctionsv1.PublicBid{
		Id:          b.BidID.String(),
		Seq:         b.Seq,
		Kind:        string(b.Kind),
		BidderName:  b.BidderName,
		MaskedEmail: b.MaskedEmail,
		Amount:      b.Amount.StringFixed(2),
		CreatedAt:   formatTime(&b.CreatedAt),
	}
}

func mapPublicBidsToProto(list []*projections.PublicBid) []*auctionsv1.PublicBid {
	out := make([]*auctionsv1.PublicBid, len(list))
	for i, b := range list {
		out[i] = mapPublicBidToProto(b)
	}
	return out
}

func mapPublicAuctionToProto(p *projections.PublicAuction) *auctionsv1.PublicAuction {
	out := &auctionsv1.PublicAuction{
		Id:              p.ID.String(),
		Name:            p.Name,
		Status:          string(p.Status),
		IsDemo:          p.IsDemo,
		StartTime:       formatTime(p.StartTime),
		EndTime:         formatTime(p.EndTime),
		ShippingAllowed: p.ShippingAllowed,
		ClosedAt:        formatTime(p.ClosedAt),
		Items:           make([]*auctionsv1.PublicItem, len(p.Items)),
		GeneratedAt:     formatTime(&p.GeneratedAt),
	}
	if p.PickupLocation != nil {
		out.PickupLocation = *p.PickupLocation
	}
	for i, item := range p.Items {
		out.Items[i] = &auctionsv1.PublicItem{
			Id:           item.ID.String(),
			Title:        item.Title,
			Description:  item.Description,
			Lot:          lotToProto(item.Lot),
			StartingBid:  formatAmount(item.StartingBid),
			MinIncrement: item.MinIncrement.StringFixed(2),
			BuyNowPrice:  formatAmount(item.BuyNowPrice),
			IsSold:       item.IsSold,
			CurrentBid:   formatAmount(item.CurrentBid),
			MinNextBid:   formatAmount(item.MinNextBid),
			BidCount:     int32(item.BidCount),
			Winner:       mapPublicBidToProto(item.Winner),
		}
	}
	return out
}
