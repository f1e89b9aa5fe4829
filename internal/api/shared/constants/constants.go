package constants

const (
	MAX_TITLE_LENGTH         = 200
	MAX_DESCRIPTION_LENGTH   = 5000
	MAX_SEARCH_LENGTH        = 200
	MAX_IMAGES_PER_ASSET     = 20
	MAX_HIGHLIGHTS_PER_ASSET = 10
	MAX_DOCUMENTS_PER_ASSET  = 20
	MAX_ATTRIBUTES_PER_ASSET = 50
	MAX_PRICE_SYMBOLS        = 10
)
