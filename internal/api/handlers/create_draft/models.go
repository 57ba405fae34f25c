package create_draft

// CreateDraftRequest HTTP request model
type CreateDraftRequest struct {
	CustomerID *string `json:"customerId,omitempty"` // опционально: сразу выбрать клиента
}
