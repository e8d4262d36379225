package auth

import (
	"testing"
)

func TestBidderID(t *testing.T) {
	a := BidderID("Bidder@Example.com ")
	b := BidderID("bidder@example.com")
	if a != b {
		t.Errorf("BidderID should ignore case and surrounding space: %s != %s", a, b)
	}

	if a == BidderID("other@example.com") {
		t.Error("Different emails must map to different bidder ids")
	}

	if a.Version() != 8 {
		t.Errorf("Version = %d, want 8", a.Version())
	}
}
