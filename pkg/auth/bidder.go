package auth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BidderID derives a stable identifier for an unauthenticated bidder, so the
// same email always maps to the same bidder across auctions.
func BidderID(email string) uuid.UUID {
	sum := blake2b.Sum256([]byte(NormalizeEmail(email)))

	var id uuid.UUID
	copy(id[:], sum[:16])
	id[6] = (id[6] & 0x0f) | 0x80 // version 8
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
	return id
}
