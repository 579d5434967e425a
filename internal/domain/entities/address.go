package entities

import (
	"errors"
	"strconv"
	"time"

	"gta_clima/pkg"
)

var (
	ErrAddressOwnerMissing   = errors.New("address must belong to a client or an officer")
	ErrAddressOwnerAmbiguous = errors.New("address cannot belong to both a client and an officer")
	ErrAddressCoordinates    = errors.New("address coordinates must hold latitude and longitude")
)

type AddressType string

const (
	AddressTypeEmpresarial AddressType = "Empresarial"
	AddressTypeResidencial AddressType = "Residencial"
)

func (t AddressType) Valid() bool {
	return t == AddressTypeEmpresarial || t == AddressTypeResidencial
}

// complementNone is the sentinel stored when no complement is given, so that
// an absent complement and an empty string produce the same uniqueness key.
const complementNone = "none"

// Address is a service location owned by exactly one of client/officer.
// Coordinates arrive from the geocoding collaborator before persistence.
type Address struct {
	ID                  string
	ClientID            string
	OfficerID           string
	AddressType         AddressType
	Street              string
	Number              int
	Complement          string
	District            string
	City                string
	State               string
	PostalCode          string
	Coordinates         []float64
	CreatedBy           CreatedBy
	ModificationHistory []ModificationEntry
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
}

// ValidateOwner enforces the exactly-one-owner rule.
func (a Address) ValidateOwner() error {
	if a.ClientID == "" && a.OfficerID == "" {
		return ErrAddressOwnerMissing
	}
	if a.ClientID != "" && a.OfficerID != "" {
		return ErrAddressOwnerAmbiguous
	}
	return nil
}

// ValidateCoordinates enforces the [lat, lng] pair from the geocoder.
func (a Address) ValidateCoordinates() error {
	if len(a.Coordinates) != 2 {
		return ErrAddressCoordinates
	}
	return nil
}

func (a Address) owner() string {
	if a.ClientID != "" {
		return "client:" + a.ClientID
	}
	return "officer:" + a.OfficerID
}

// ClaimScope is the collation-aware composite uniqueness scope of the address.
func (a Address) ClaimScope() string {
	complement := a.Complement
	if complement == "" {
		complement = complementNone
	}
	return "address#" + a.owner() + "#" + pkg.FoldKey(
		string(a.AddressType),
		a.Street,
		strconv.Itoa(a.Number),
		a.District,
		a.City,
		a.State,
		a.PostalCode,
		complement,
	)
}

func (a Address) TrackedFields() map[string]any {
	return map[string]any{
		"clientId":    a.ClientID,
		"officerId":   a.OfficerID,
		"addressType": string(a.AddressType),
		"street":      a.Street,
		"number":      a.Number,
		"complement":  a.Complement,
		"district":    a.District,
		"city":        a.City,
		"state":       a.State,
		"postalCode":  a.PostalCode,
	}
}
