package domain

const (
	// Defaults applied to newly created assets
	DEFAULT_MINIMUM_INVESTMENT = 100.0
	DEFAULT_EXPECTED_YIELD     = 0.0
	DEFAULT_LOCATION           = "Not specified"
	DEFAULT_OWNER              = "Marketplace User"

	// Date layouts used by the ledgers
	PRICE_HISTORY_DATE_LAYOUT = "2006-01"
	OWNER_HISTORY_DATE_LAYOUT = "2006-01-02"

	// Prefixes of simulated on-chain identifiers
	TX_HASH_PREFIX = "sim_tx_"
	MINT_PREFIX    = "sim_mint_"
)

// DefaultHighlights returns the highlights given to an asset created without any
func DefaultHighlights() []string {
	return []string{
		"New user-created asset",
		"Growth potential",
		"Available for investment",
	}
}
