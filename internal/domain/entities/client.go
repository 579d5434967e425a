package entities

import "time"

type ClientType string

const (
	ClientTypeNovo     ClientType = "Novo"
	ClientTypeComum    ClientType = "Comum"
	ClientTypeContrato ClientType = "Contrato"
)

func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeNovo, ClientTypeComum, ClientTypeContrato:
		return true
	}
	return false
}

// Client is a customer record. Phone is always unique; Register (CPF/CNPJ)
// is unique when present.
type Client struct {
	ID                  string
	UserID              string
	Name                string
	Phone               string
	ClientType          ClientType
	AlternativePhone    string
	Email               string
	Register            string
	ClientNumber        string
	CreatedBy           CreatedBy
	ModificationHistory []ModificationEntry
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
}

func ClientPhoneClaimScope(phone string) string {
	return "client#phone#" + phone
}

func ClientRegisterClaimScope(register string) string {
	return "client#register#" + register
}

func (c Client) TrackedFields() map[string]any {
	return map[string]any{
		"name":             c.Name,
		"phone":            c.Phone,
		"alternativePhone": c.AlternativePhone,
		"email":            c.Email,
		"register":         c.Register,
		"clientType":       string(c.ClientType),
	}
}
