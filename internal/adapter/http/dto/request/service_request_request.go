package request

// CreateServiceRequest is the payload opening a new service request. Exactly
// one of environment_id and environment_name must be set: the first targets a
// registered environment, the second opens a provisional slot.
type CreateServiceRequest struct {
	ClientID              string   `json:"client_id" binding:"required"`
	AddressID             string   `json:"address_id" binding:"required"`
	EnvironmentID         string   `json:"environment_id"`
	EnvironmentName       string   `json:"environment_name"`
	RequestType           string   `json:"request_type" binding:"required"`
	Services              []string `json:"services"`
	MaintenanceProblem    string   `json:"maintenance_problem"`
	InstallationEquipment string   `json:"installation_equipment"`
}

// ScheduleVisitRequest assigns a technician and a visit slot to a request.
type ScheduleVisitRequest struct {
	OfficerID string `json:"officer_id" binding:"required"`
	DateVisit string `json:"date_visit" binding:"required"`
	TimeVisit string `json:"time_visit" binding:"required"`
}
