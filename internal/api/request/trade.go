package request

// TradeRequest carries a trade order from the dashboard. Quantity arrives as
// free text from the order form and is parsed during validation.
type TradeRequest struct {
	Symbol   string `json:"symbol"`
	Side     string `json:"side"`
	Quantity string `json:"quantity"`
}
