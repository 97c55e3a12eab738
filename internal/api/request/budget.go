package request

type CreateBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

type UpdateBudgetRequest struct {
	Limit string `json:"limit"`
}
