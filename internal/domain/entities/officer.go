package entities

import "time"

type OfficerType string

const (
	OfficerTypeTecnico    OfficerType = "Técnico"
	OfficerTypeSecretario OfficerType = "Secretário"
	OfficerTypeGestor     OfficerType = "Gestor"
)

func (t OfficerType) Valid() bool {
	switch t {
	case OfficerTypeTecnico, OfficerTypeSecretario, OfficerTypeGestor:
		return true
	}
	return false
}

type OfficerLevel string

const (
	OfficerLevelJunior OfficerLevel = "Junior"
	OfficerLevelPleno  OfficerLevel = "Pleno"
	OfficerLevelSenior OfficerLevel = "Sênior"
)

func (l OfficerLevel) Valid() bool {
	switch l {
	case OfficerLevelJunior, OfficerLevelPleno, OfficerLevelSenior:
		return true
	}
	return false
}

// Officer is a staff member; orders require an officer of type Técnico.
// Phone and Register (CPF) are unique across officers, held as claims.
type Officer struct {
	ID            string
	UserID        string
	Register      string
	Phone         string
	OfficerNumber string
	OfficerType   OfficerType
	OfficerLevel  OfficerLevel
	CreatedBy     CreatedBy
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func OfficerPhoneClaimScope(phone string) string {
	return "officer#phone#" + phone
}

func OfficerRegisterClaimScope(register string) string {
	return "officer#register#" + register
}
