package request

type RegisterOfficerRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Register     string `json:"register" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	OfficerType  string `json:"officer_type" binding:"required"`
	OfficerLevel string `json:"officer_level" binding:"required"`
}
