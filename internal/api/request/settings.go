package request

type UpdateQuoteKeyRequest struct {
	APIKey string `json:"apiKey"`
}
