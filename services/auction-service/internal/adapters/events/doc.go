// Package events relays the auction-service outbox to the message broker.
package events
