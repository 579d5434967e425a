package entities

import (
	"time"

	"gta_clima/pkg"
)

// Environment is a piece of installed equipment at a client's address,
// unique per (client, address, name) under collation-aware comparison.
type Environment struct {
	ID                  string
	ClientID            string
	AddressID           string
	EnvironmentName     string
	EnvironmentSize     float64
	EquipmentType       string
	EquipmentBrand      string
	EquipmentModel      string
	CapacityBTU         int
	Cicle               string
	Volt                string
	SerialModel         string
	EquipmentNumber     string
	CreatedBy           CreatedBy
	ModificationHistory []ModificationEntry
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
}

// ClaimScope is the uniqueness scope for the (client, address, name) triple.
func (e Environment) ClaimScope() string {
	return EnvironmentClaimScope(e.ClientID, e.AddressID, e.EnvironmentName)
}

func EnvironmentClaimScope(clientID, addressID, name string) string {
	return "environment#" + clientID + "#" + addressID + "#" + pkg.Fold(name)
}

func (e Environment) TrackedFields() map[string]any {
	return map[string]any{
		"environmentName": e.EnvironmentName,
		"environmentSize": e.EnvironmentSize,
		"equipmentType":   e.EquipmentType,
		"equipmentBrand":  e.EquipmentBrand,
		"equipmentModel":  e.EquipmentModel,
		"capacityBTU":     e.CapacityBTU,
		"cicle":           e.Cicle,
		"volt":            e.Volt,
		"serialModel":     e.SerialModel,
	}
}
