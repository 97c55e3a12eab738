package request

type CreateTransactionRequest struct {
	Date     string `json:"date"`
	Merchant string `json:"merchant"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type UpdateTransactionRequest struct {
	Date     *string `json:"date,omitempty"`
	Merchant *string `json:"merchant,omitempty"`
	Amount   *string `json:"amount,omitempty"`
	Category *string `json:"category,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
