package request

type CreateAddressRequest struct {
	ClientID    string    `json:"client_id"`
	OfficerID   string    `json:"officer_id"`
	AddressType string    `json:"address_type" binding:"required"`
	Street      string    `json:"street" binding:"required"`
	Number      int       `json:"number" binding:"required"`
	Complement  string    `json:"complement"`
	District    string    `json:"district" binding:"required"`
	City        string    `json:"city" binding:"required"`
	State       string    `json:"state" binding:"required"`
	PostalCode  string    `json:"postal_code" binding:"required"`
	Coordinates []float64 `json:"coordinates"`
}

type UpdateAddressRequest struct {
	AddressType string    `json:"address_type"`
	Street      string    `json:"street"`
	Number      int       `json:"number"`
	Complement  string    `json:"complement"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postal_code"`
	Coordinates []float64 `json:"coordinates"`
}
