package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// mintRecord is the payload hashed into a simulated mint address
type mintRecord struct {
	AssetID     string  `json:"asset_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	TotalSupply int64   `json:"total_supply"`
	TotalValue  float64 `json:"total_value"`
	CreatedAt   string  `json:"created_at"`
}

// transferRecord is the payload hashed into a simulated transaction hash
type transferRecord struct {
	Kind    string `json:"kind"`
	AssetID string `json:"asset_id"`
	Owner   string `json:"owner"`
	Tokens  int64  `json:"tokens"`
	Nonce   string `json:"nonce"`
}

// simulatedHash hashes the RFC 8785 canonical JSON of record and prefixes the hex digest
func simulatedHash(prefix string, record any) (string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize record: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return prefix + hex.EncodeToString(sum[:]), nil
}
