package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type EnvironmentResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	AddressID       string    `json:"address_id"`
	EnvironmentName string    `json:"environment_name"`
	EnvironmentSize float64   `json:"environment_size,omitempty"`
	EquipmentType   string    `json:"equipment_type,omitempty"`
	EquipmentBrand  string    `json:"equipment_brand,omitempty"`
	EquipmentModel  string    `json:"equipment_model,omitempty"`
	CapacityBTU     int       `json:"capacity_btu,omitempty"`
	Cicle           string    `json:"cicle,omitempty"`
	Volt            string    `json:"volt,omitempty"`
	SerialModel     string    `json:"serial_model,omitempty"`
	EquipmentNumber string    `json:"equipment_number"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEnvironment(e entities.Environment) EnvironmentResponse {
	return EnvironmentResponse{
		ID:              e.ID,
		ClientID:        e.ClientID,
		AddressID:       e.AddressID,
		EnvironmentName: e.EnvironmentName,
		EnvironmentSize: e.EnvironmentSize,
		EquipmentType:   e.EquipmentType,
		EquipmentBrand:  e.EquipmentBrand,
		EquipmentModel:  e.EquipmentModel,
		CapacityBTU:     e.CapacityBTU,
		Cicle:           e.Cicle,
		Volt:            e.Volt,
		SerialModel:     e.SerialModel,
		EquipmentNumber: e.EquipmentNumber,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
