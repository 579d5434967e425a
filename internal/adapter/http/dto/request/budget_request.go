package request

type CreateBudgetRequest struct {
	RequestID              string   `json:"request_id" binding:"required"`
	Services               []string `json:"services"`
	ServiceType            string   `json:"service_type"`
	ServicePrice           float64  `json:"service_price"`
	Equipment              string   `json:"equipment"`
	EquipmentPrice         float64  `json:"equipment_price"`
	BudgetRebate           float64  `json:"budget_rebate"`
	BudgetPrice            float64  `json:"budget_price"`
	NameClient             string   `json:"name_client"`
	CnpjCpfClient          string   `json:"cnpj_cpf_client"`
	PhoneClient            string   `json:"phone_client"`
	PhoneAlternativeClient string   `json:"phone_alternative_client"`
}

// ResolveBudgetRequest approves or rejects a pending budget. Acao carries the
// explicit instruction for a rejection: "excluir" abandons budget and request,
// "refazer" keeps both alive for a redo budget.
type ResolveBudgetRequest struct {
	Status                 string `json:"status" binding:"required"`
	Acao                   string `json:"acao"`
	Feedback               string `json:"feedback"`
	NameClient             string `json:"name_client"`
	CnpjCpfClient          string `json:"cnpj_cpf_client"`
	PhoneClient            string `json:"phone_client"`
	PhoneAlternativeClient string `json:"phone_alternative_client"`
}
