// Package auctionsv1 holds the wire messages of the auctions.v1.AuctionService
// contract. Amounts travel as decimal strings with two places and timestamps
// as RFC 3339 strings.
package auctionsv1

type Auction struct {
	Id              string `json:"id"`
	SellerId        string `json:"seller_id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	IsDemo          bool   `json:"is_demo"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	PickupLocation  string `json:"pickup_location,omitempty"`
	ShippingAllowed bool   `json:"shipping_allowed"`
	PublishedAt     string `json:"published_at,omitempty"`
	ClosedAt        string `json:"closed_at,omitempty"`
	ArchivedAt      string `json:"archived_at,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type Item struct {
	Id           string `json:"id"`
	AuctionId    string `json:"auction_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Lot          *int32 `json:"lot,omitempty"`
	StartingBid  string `json:"starting_bid,omitempty"`
	MinIncrement string `json:"min_increment"`
	BuyNowPrice  string `json:"buy_now_price,omitempty"`
	IsListed     bool   `json:"is_listed"`
	IsSold       bool   `json:"is_sold"`
	SoldAt       string `json:"sold_at,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type Comp struct {
	Id        string `json:"id"`
	ItemId    string `json:"item_id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	SoldPrice string `json:"sold_price"`
	SoldDate  string `json:"sold_date,omitempty"`
	Url       string `json:"url,omitempty"`
}

// Bid is the seller's view of a ledger entry
type Bid struct {
	Id          string `json:"id"`
	AuctionId   string `json:"auction_id"`
	ItemId      string `json:"item_id"`
	Seq         int64  `json:"seq"`
	Kind        string `json:"kind"`
	BidderEmail string `json:"bidder_email"`
	BidderName  string `json:"bidder_name"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

type Order struct {
	Id         string `json:"id"`
	AuctionId  string `json:"auction_id"`
	ItemId     string `json:"item_id"`
	BidId      string `json:"bid_id"`
	BuyerEmail string `json:"buyer_email"`
	BuyerName  string `json:"buyer_name"`
	Amount     string `json:"amount"`
	OrderType  string `json:"order_type"`
	CreatedAt  string `json:"created_at"`
}

// PublicBid never carries the bidder's email
type PublicBid struct {
	Id          string `json:"id"`
	Seq         int64  `json:"seq"`
	Kind        string `json:"kind"`
	BidderName  string `json:"bidder_name"`
	MaskedEmail string `json:"masked_email"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

type PublicItem struct {
	Id           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Lot          *int32     `json:"lot,omitempty"`
	StartingBid  string     `json:"starting_bid,omitempty"`
	MinIncrement string     `json:"min_increment"`
	BuyNowPrice  string     `json:"buy_now_price,omitempty"`
	IsSold       bool       `json:"is_sold"`
	CurrentBid   string     `json:"current_bid,omitempty"`
	MinNextBid   string     `json:"min_next_bid,omitempty"`
	BidCount     int32      `json:"bid_count"`
	Winner       *PublicBid `json:"winner,omitempty"`
}

type PublicAuction struct {
	Id              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status"`
	IsDemo          bool          `json:"is_demo"`
	StartTime       string        `json:"start_time,omitempty"`
	EndTime         string        `json:"end_time,omitempty"`
	PickupLocation  string        `json:"pickup_location,omitempty"`
	ShippingAllowed bool          `json:"shipping_allowed"`
	ClosedAt        string        `json:"closed_at,omitempty"`
	Items           []*PublicItem `json:"items"`
	GeneratedAt     string        `json:"generated_at"`
}

type CreateAuctionRequest struct {
	Name   string `json:"name"`
	IsDemo bool   `json:"is_demo"`
}

type CreateAuctionResponse struct {
	Auction *Auction `json:"auction"`
}

type GetAuctionRequest struct {
	AuctionId string `json:"auction_id"`
}

type GetAuctionResponse struct {
	Auction *Auction `json:"auction"`
}

type ListSellerAuctionsRequest struct{}

type ListSellerAuctionsResponse struct {
	Auctions []*Auction `json:"auctions"`
}

// UpdateAuctionSettingsRequest leaves nil fields unchanged
type UpdateAuctionSettingsRequest struct {
	AuctionId       string  `json:"auction_id"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	PickupLocation  *string `json:"pickup_location,omitempty"`
	ShippingAllowed *bool   `json:"shipping_allowed,omitempty"`
}

type UpdateAuctionSettingsResponse struct {
	Auction *Auction `json:"auction"`
}

type PublishAuctionRequest struct {
	AuctionId string `json:"auction_id"`
}

type PublishAuctionResponse struct {
	Auction *Auction `json:"auction"`
}

type CloseAuctionRequest struct {
	AuctionId string `json:"auction_id"`
}

type CloseAuctionResponse struct {
	Auction *Auction `json:"auction"`
}

type DeleteAuctionRequest struct {
	AuctionId string `json:"auction_id"`
}

type DeleteAuctionResponse struct{}

type CreateItemRequest struct {
	AuctionId   string `json:"auction_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Lot         *int32 `json:"lot,omitempty"`
}

type CreateItemResponse struct {
	Item *Item `json:"item"`
}

type ListItemsRequest struct {
	AuctionId string `json:"auction_id"`
}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

// ItemAuctionSettings is a partial update; nil fields are left unchanged
type ItemAuctionSettings struct {
	StartingBid  *string `json:"starting_bid,omitempty"`
	MinIncrement *string `json:"min_increment,omitempty"`
	BuyNowPrice  *string `json:"buy_now_price,omitempty"`
	IsListed     *bool   `json:"is_listed,omitempty"`
}

type UpdateItemAuctionSettingsRequest struct {
	ItemId   string               `json:"item_id"`
	Settings *ItemAuctionSettings `json:"settings"`
}

type UpdateItemAuctionSettingsResponse struct {
	Item *Item `json:"item"`
}

type BatchUpdateItemAuctionSettingsRequest struct {
	ItemIds  []string             `json:"item_ids"`
	Settings *ItemAuctionSettings `json:"settings"`
}

type BatchUpdateItemAuctionSettingsResponse struct {
	Items []*Item `json:"items"`
}

type CompInput struct {
	Title     string `json:"title"`
	Source    string `json:"source,omitempty"`
	SoldPrice string `json:"sold_price"`
	SoldDate  string `json:"sold_date,omitempty"`
	Url       string `json:"url,omitempty"`
}

type RecordCompsRequest struct {
	ItemId string       `json:"item_id"`
	Comps  []*CompInput `json:"comps"`
}

type RecordCompsResponse struct {
	Comps []*Comp `json:"comps"`
}

type GetAuctionBidsRequest struct {
	AuctionId string `json:"auction_id"`
}

type ItemBids struct {
	Item                 *Item  `json:"item"`
	Bids                 []*Bid `json:"bids"`
	BidCount             int32  `json:"bid_count"`
	HighestBid           *Bid   `json:"highest_bid,omitempty"`
	CurrentPrice         string `json:"current_price,omitempty"`
	Winner               *Bid   `json:"winner,omitempty"`
	WinnerDistance       string `json:"winner_distance,omitempty"`
	AvgCompPrice         string `json:"avg_comp_price,omitempty"`
	SuggestedStartingBid string `json:"suggested_starting_bid,omitempty"`
}

type GetAuctionBidsResponse struct {
	Auction *Auction    `json:"auction"`
	Items   []*ItemBids `json:"items"`
}

type GetDemoResultsRequest struct {
	AuctionId string `json:"auction_id"`
}

type RankedGuess struct {
	Bid        *Bid   `json:"bid"`
	Difference string `json:"difference"`
}

type DemoItemResult struct {
	ItemId       string         `json:"item_id"`
	Title        string         `json:"title"`
	AvgCompPrice string         `json:"avg_comp_price,omitempty"`
	CompCount    int32          `json:"comp_count"`
	Guesses      []*RankedGuess `json:"guesses"`
	Winner       *RankedGuess   `json:"winner,omitempty"`
}

type GetDemoResultsResponse struct {
	AuctionId string            `json:"auction_id"`
	Items     []*DemoItemResult `json:"items"`
}

type ListOrdersRequest struct {
	AuctionId  string `json:"auction_id,omitempty"`
	BuyerEmail string `json:"buyer_email,omitempty"`
}

type ListOrdersResponse struct {
	Orders []*Order `json:"orders"`
}

type GetOrderRequest struct {
	OrderId string `json:"order_id"`
}

type GetOrderResponse struct {
	Order *Order `json:"order"`
}

type ListPublicAuctionsRequest struct{}

type ListPublicAuctionsResponse struct {
	Auctions []*Auction `json:"auctions"`
}

type GetPublicAuctionRequest struct {
	AuctionId string `json:"auction_id"`
}

type GetPublicAuctionResponse struct {
	Auction *PublicAuction `json:"auction"`
}

type PlaceBidRequest struct {
	ItemId      string `json:"item_id"`
	BidderEmail string `json:"bidder_email"`
	BidderName  string `json:"bidder_name"`
	Amount      string `json:"amount"`
	RequestId   string `json:"request_id,omitempty"`
}

type PlaceBidResponse struct {
	Bid *PublicBid `json:"bid"`
}

type BuyNowRequest struct {
	ItemId     string `json:"item_id"`
	BuyerEmail string `json:"buyer_email"`
	BuyerName  string `json:"buyer_name"`
	RequestId  string `json:"request_id,omitempty"`
}

type BuyNowResponse struct {
	Bid     *PublicBid `json:"bid"`
	OrderId string     `json:"order_id"`
}

type GetItemBidsRequest struct {
	ItemId string `json:"item_id"`
}

type GetItemBidsResponse struct {
	Bids []*PublicBid `json:"bids"`
}
