package entities

import (
	"errors"
	"time"

	"gta_clima/pkg"
)

var (
	ErrRequestServiceKindMissing   = errors.New("request carries no maintenance problem, installation equipment or services")
	ErrRequestServiceKindAmbiguous = errors.New("request mixes maintenance problem, installation equipment or services")
	ErrUnknownResolutionAction     = errors.New("unknown resolution action")
)

// BudgetStatus is the approval state of a budget: Pendente -> Aprovado|Reprovado.
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusReprovado BudgetStatus = "Reprovado"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusPendente, BudgetStatusAprovado, BudgetStatusReprovado:
		return true
	}
	return false
}

// ResolutionAction is the caller's explicit instruction accompanying a
// Reprovado resolution. The legacy system encoded this inside the free-text
// feedback field ("excluir" / "Refazer Orçamento"); here it is a dedicated
// enum so display text and control flow stay separate.
type ResolutionAction string

const (
	ResolutionActionNone    ResolutionAction = ""
	ResolutionActionExcluir ResolutionAction = "excluir"
	ResolutionActionRefazer ResolutionAction = "refazer"
)

func ParseResolutionAction(s string) (ResolutionAction, error) {
	switch ResolutionAction(s) {
	case ResolutionActionNone, ResolutionActionExcluir, ResolutionActionRefazer:
		return ResolutionAction(s), nil
	}
	return "", ErrUnknownResolutionAction
}

// Budget is a priced proposal for work on a request. RequestID is the owning
// reference; the request's budgetId is only a lookup mirror.
type Budget struct {
	ID                     string
	RequestID              string
	ServiceIDs             []string
	ServiceType            string
	ServicePrice           float64
	Equipment              string
	EquipmentPrice         float64
	BudgetNumber           string
	BudgetRebate           float64
	BudgetPrice            float64
	BudgetStatus           BudgetStatus
	Feedback               string
	NameClient             string
	CnpjCpfClient          string
	PhoneClient            string
	PhoneAlternativeClient string
	CreatedBy              CreatedBy
	ModificationHistory    []ModificationEntry
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Version                int64
}

// HasInvoicingData reports whether the fields required to issue an order
// (and its invoice) are populated.
func (b Budget) HasInvoicingData() bool {
	return b.NameClient != "" && b.CnpjCpfClient != "" && b.PhoneClient != ""
}

func (b Budget) TrackedFields() map[string]any {
	return map[string]any{
		"budgetStatus":           string(b.BudgetStatus),
		"budgetPrice":            b.BudgetPrice,
		"budgetRebate":           b.BudgetRebate,
		"feedback":               b.Feedback,
		"nameClient":             b.NameClient,
		"cnpjCpfClient":          b.CnpjCpfClient,
		"phoneClient":            b.PhoneClient,
		"phoneAlternativeClient": b.PhoneAlternativeClient,
	}
}

// SentFeedback renders the request feedback set when a budget is issued.
func (b Budget) SentFeedback(at time.Time) string {
	return "Orçamento (" + b.BudgetNumber + ") enviado para aprovação em " + pkg.FormatDate(at)
}

// ResolvedFeedback renders the request feedback set when a budget is
// approved or rejected; resolver is "pelo Cliente" or "pela GTA".
func (b Budget) ResolvedFeedback(resolver string, at time.Time) string {
	return "Orçamento " + b.BudgetNumber + " " + string(b.BudgetStatus) + " " + resolver + " em " + pkg.FormatDate(at)
}
