package request

type CreateClientRequest struct {
	UserID           string `json:"user_id"`
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	AlternativePhone string `json:"alternative_phone"`
	Email            string `json:"email"`
	Register         string `json:"register"`
	ClientType       string `json:"client_type"`
}

type UpdateClientRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	AlternativePhone string `json:"alternative_phone"`
	Email            string `json:"email"`
	Register         string `json:"register"`
	ClientType       string `json:"client_type"`
}
