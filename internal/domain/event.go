package domain

import "time"

// AssetEventType represents a lifecycle change of a catalog asset
type AssetEventType string

const (
	AssetEventCreated  AssetEventType = "asset.created"
	AssetEventUpdated  AssetEventType = "asset.updated"
	AssetEventInvested AssetEventType = "asset.invested"
)

// AssetEvent is the message published to the event stream after a catalog mutation
type AssetEvent struct {
	EventID         string         `json:"event_id"`
	Type            AssetEventType `json:"type"`
	AssetID         string         `json:"asset_id"`
	Category        Category       `json:"category"`
	PricePerToken   float64        `json:"price_per_token"`
	AvailableTokens int64          `json:"available_tokens"`
	Tokens          int64          `json:"tokens,omitempty"` // only for asset.invested
	TxHash          string         `json:"tx_hash,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
