package entities

import (
	"strings"
	"time"

	"gta_clima/pkg"
)

// RequestStatus is the lifecycle state of a service request. Transitions are
// side effects of budget/order/history events, never direct status edits.
//
// Pendente -> Visita Técnica Programada -> Visita Técnica Realizada ->
// Orçamento -> Orçamento Aprovado | Orçamento Reprovado ->
// Ordem de Serviço Programada -> Ordem de Serviço Realizada -> Finalizado,
// with Retorno as a rework side-state.

type RequestStatus string

const (
	RequestStatusPendente         RequestStatus = "Pendente"
	RequestStatusRetorno          RequestStatus = "Retorno"
	RequestStatusVisitaProgramada RequestStatus = "Visita Técnica Programada"
	RequestStatusVisitaRealizada  RequestStatus = "Visita Técnica Realizada"
	RequestStatusOrcamento        RequestStatus = "Orçamento"
	RequestStatusOrcamentoAprov   RequestStatus = "Orçamento Aprovado"
	RequestStatusOrcamentoReprov  RequestStatus = "Orçamento Reprovado"
	RequestStatusOrdemProgramada  RequestStatus = "Ordem de Serviço Programada"
	RequestStatusOrdemRealizada   RequestStatus = "Ordem de Serviço Realizada"
	RequestStatusFinalizado       RequestStatus = "Finalizado"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPendente, RequestStatusRetorno,
		RequestStatusVisitaProgramada, RequestStatusVisitaRealizada,
		RequestStatusOrcamento, RequestStatusOrcamentoAprov, RequestStatusOrcamentoReprov,
		RequestStatusOrdemProgramada, RequestStatusOrdemRealizada,
		RequestStatusFinalizado:
		return true
	}
	return false
}

// Open reports whether the request still blocks new work on its environment.
func (s RequestStatus) Open() bool {
	return s != RequestStatusFinalizado
}

type RequestType string

const (
	RequestTypeInstalacao RequestType = "Instalação"
	RequestTypeManutencao RequestType = "Manutenção"
)

func (t RequestType) Valid() bool {
	return t == RequestTypeInstalacao || t == RequestTypeManutencao
}

// Request is a customer's service need tied to an address and an environment.
//
// EnvironmentID references a registered environment; EnvID is the provisional
// address+name composite used while the environment is not yet registered.
// BudgetID and OrderID are non-owning back-references kept in sync by the
// orchestrator; the owning reference always lives on Budget/Order.

type Request struct {
	ID                    string
	ClientID              string
	AddressID             string
	EnvironmentID         string
	EnvID                 string
	RequestType           RequestType
	RequestStatus         RequestStatus
	ServiceIDs            []string
	MaintenanceProblem    string
	InstallationEquipment string
	RequestNumber         string
	RequestDate           string
	DateVisit             string
	TimeVisit             string
	Feedback              string
	OfficerID             string
	BudgetID              string
	OrderID               string
	CreatedBy             CreatedBy
	ModificationHistory   []ModificationEntry
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int64
}

// ProvisionalEnvID builds the provisional environment key for a request made
// before the environment is registered: addressId plus the slugged name.
func ProvisionalEnvID(addressID, envName string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(envName), "-"))
	return addressID + "-" + slug
}

// EnvKey is the environment identity this request occupies: the registered
// environment id when present, otherwise the provisional composite.
func (r Request) EnvKey() string {
	if r.EnvironmentID != "" {
		return r.EnvironmentID
	}
	return r.EnvID
}

// OpenClaimScope is the uniqueness scope blocking a second open request for
// the same address+environment pair.
func (r Request) OpenClaimScope() string {
	return "request-open#" + r.AddressID + "#" + r.EnvKey()
}

// OpenRequestClaimScope builds the scope without a materialized Request.
func OpenRequestClaimScope(addressID, envKey string) string {
	return "request-open#" + addressID + "#" + envKey
}

// ValidateServiceKind enforces that exactly one of maintenance problem,
// installation equipment or service items is set.
func (r Request) ValidateServiceKind() error {
	hasProblem := r.MaintenanceProblem != ""
	hasEquipment := r.InstallationEquipment != ""
	hasServices := len(r.ServiceIDs) > 0

	count := 0
	for _, set := range []bool{hasProblem, hasEquipment, hasServices} {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return ErrRequestServiceKindMissing
	case count > 1:
		return ErrRequestServiceKindAmbiguous
	}
	return nil
}

// TrackedFields is the audit snapshot of the request's mutable fields.
func (r Request) TrackedFields() map[string]any {
	return map[string]any{
		"requestStatus":         string(r.RequestStatus),
		"environmentId":         r.EnvironmentID,
		"envId":                 r.EnvID,
		"maintenanceProblem":    r.MaintenanceProblem,
		"installationEquipment": r.InstallationEquipment,
		"dateVisit":             r.DateVisit,
		"timeVisit":             r.TimeVisit,
		"feedback":              r.Feedback,
		"officerId":             r.OfficerID,
		"budgetId":              r.BudgetID,
		"orderId":               r.OrderID,
	}
}

// VisitFeedback renders the scheduled-visit feedback message.
func VisitFeedback(dateVisit, timeVisit string) string {
	return "Visita Técnica marcada para " + dateVisit + " às " + timeVisit
}

// FinishedFeedback renders the completion feedback message.
func FinishedFeedback(at time.Time) string {
	return "Serviços finalizados em " + pkg.FormatDate(at)
}
