package request

type CreateEnvironmentRequest struct {
	ClientID        string  `json:"client_id" binding:"required"`
	AddressID       string  `json:"address_id" binding:"required"`
	RequestID       string  `json:"request_id"`
	EnvironmentName string  `json:"environment_name" binding:"required"`
	EnvironmentSize float64 `json:"environment_size"`
	EquipmentType   string  `json:"equipment_type"`
	EquipmentBrand  string  `json:"equipment_brand"`
	EquipmentModel  string  `json:"equipment_model"`
	CapacityBTU     int     `json:"capacity_btu"`
	Cicle           string  `json:"cicle"`
	Volt            string  `json:"volt"`
	SerialModel     string  `json:"serial_model"`
}
