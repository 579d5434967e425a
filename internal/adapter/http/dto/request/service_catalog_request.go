package request

type RegisterServiceRequest struct {
	ServiceType        string  `json:"service_type" binding:"required"`
	ServiceName        string  `json:"service_name" binding:"required"`
	ServiceDescription string  `json:"service_description"`
	ServicePrice       float64 `json:"service_price"`
}
