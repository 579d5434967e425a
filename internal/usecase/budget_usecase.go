package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IBudgetUseCase exposes budget issuance and resolution.
//
// Both operations mutate the parent request in the same atomic unit: issuing
// a budget moves the request to "Orçamento" and sets its budgetId mirror;
// resolving it moves the request to "Orçamento Aprovado"/"Orçamento
// Reprovado" — or, on a rejection with the excluir action, deletes budget and
// request together and frees the environment slot.

type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	ResolveBudget(ctx context.Context, in ResolveBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Budget, error)
}

type CreateBudgetInput struct {
	Actor                  entities.Actor
	RequestID              string
	ServiceIDs             []string
	ServiceType            string
	ServicePrice           float64
	Equipment              string
	EquipmentPrice         float64
	BudgetRebate           float64
	BudgetPrice            float64
	NameClient             string
	CnpjCpfClient          string
	PhoneClient            string
	PhoneAlternativeClient string
}

type ResolveBudgetInput struct {
	Actor                  entities.Actor
	BudgetID               string
	Status                 entities.BudgetStatus
	Action                 entities.ResolutionAction
	Feedback               string
	NameClient             string
	CnpjCpfClient          string
	PhoneClient            string
	PhoneAlternativeClient string
}

type BudgetUseCase struct {
	budgets   interfaces.IBudgetRepository
	requests  interfaces.IRequestRepository
	claims    interfaces.IUniquenessClaimRepository
	sequences interfaces.ISequenceGenerator
	writer    interfaces.ITransactionWriter
	gateway   interfaces.IBillingGateway
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the budget flow; gateway may be nil to disable
// charge creation on approval.
func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	requests interfaces.IRequestRepository,
	claims interfaces.IUniquenessClaimRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
	gateway interfaces.IBillingGateway,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgets:   budgets,
		requests:  requests,
		claims:    claims,
		sequences: sequences,
		writer:    writer,
		gateway:   gateway,
	}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	if strings.TrimSpace(in.RequestID) == "" {
		return entities.Budget{}, ErrInvalidID
	}

	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Budget{}, err
	}
	if req.ID == "" {
		return entities.Budget{}, ErrRequestNotFound
	}
	if req.RequestStatus == entities.RequestStatusFinalizado {
		return entities.Budget{}, ErrRequestAlreadyClosed
	}

	// The owning side decides whether a budget already exists; the request's
	// budgetId mirror is never consulted. A Reprovado budget does not block a
	// redo budget against the same request.
	existing, err := u.budgets.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID != "" && existing.BudgetStatus != entities.BudgetStatusReprovado {
		return entities.Budget{}, ErrBudgetAlreadyExists
	}

	number, err := u.sequences.Allocate(ctx, interfaces.SeqPrefixBudget)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:                     uuid.NewString(),
		RequestID:              req.ID,
		ServiceIDs:             in.ServiceIDs,
		ServiceType:            in.ServiceType,
		ServicePrice:           in.ServicePrice,
		Equipment:              in.Equipment,
		EquipmentPrice:         in.EquipmentPrice,
		BudgetNumber:           number,
		BudgetRebate:           in.BudgetRebate,
		BudgetPrice:            in.BudgetPrice,
		BudgetStatus:           entities.BudgetStatusPendente,
		NameClient:             in.NameClient,
		CnpjCpfClient:          in.CnpjCpfClient,
		PhoneClient:            in.PhoneClient,
		PhoneAlternativeClient: in.PhoneAlternativeClient,
		CreatedBy:              entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if b.BudgetPrice == 0 {
		b.BudgetPrice = b.ServicePrice + b.EquipmentPrice - b.BudgetRebate
	}

	before := req.TrackedFields()
	req.RequestStatus = entities.RequestStatusOrcamento
	req.BudgetID = b.ID
	req.Feedback = b.SentFeedback(now)
	entities.Record(&req.ModificationHistory, in.Actor.UserID, before, req.TrackedFields(), now)
	req.UpdatedAt = now

	insertBudget, err := u.budgets.InsertTx(b)
	if err != nil {
		return entities.Budget{}, err
	}
	saveRequest, err := u.requests.SaveTx(req)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.writer.Execute(ctx, insertBudget, saveRequest); err != nil {
		return entities.Budget{}, classifyConflict(err, ErrBudgetAlreadyExists)
	}
	return b, nil
}

func (u *BudgetUseCase) ResolveBudget(ctx context.Context, in ResolveBudgetInput) (entities.Budget, error) {
	resolver, err := resolverLabel(in.Actor.Level)
	if err != nil {
		return entities.Budget{}, err
	}
	if in.Status != entities.BudgetStatusAprovado && in.Status != entities.BudgetStatusReprovado {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}

	b, err := u.GetByID(ctx, in.BudgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.BudgetStatus != entities.BudgetStatusPendente {
		return entities.Budget{}, ErrBudgetAlreadyResolved
	}

	req, err := u.requests.GetByID(ctx, b.RequestID)
	if err != nil {
		return entities.Budget{}, err
	}
	if req.ID == "" {
		return entities.Budget{}, ErrRequestNotFound
	}

	now := time.Now().UTC()
	budgetBefore := b.TrackedFields()
	b.BudgetStatus = in.Status
	b.Feedback = in.Feedback
	if in.NameClient != "" {
		b.NameClient = in.NameClient
	}
	if in.CnpjCpfClient != "" {
		b.CnpjCpfClient = in.CnpjCpfClient
	}
	if in.PhoneClient != "" {
		b.PhoneClient = in.PhoneClient
	}
	if in.PhoneAlternativeClient != "" {
		b.PhoneAlternativeClient = in.PhoneAlternativeClient
	}

	if in.Status == entities.BudgetStatusAprovado && in.Actor.Level == entities.RoleCliente && !b.HasInvoicingData() {
		return entities.Budget{}, ErrInvoicingDataMissing
	}

	if in.Status == entities.BudgetStatusReprovado && in.Action == entities.ResolutionActionExcluir {
		// Abandoned request: budget and request leave together, and the
		// environment slot opens for a fresh request.
		if err := u.writer.Execute(ctx,
			u.budgets.DeleteTx(b.ID),
			u.requests.DeleteTx(req.ID),
			u.claims.ReleaseTx(req.OpenClaimScope()),
		); err != nil {
			return entities.Budget{}, err
		}
		return b, nil
	}

	entities.Record(&b.ModificationHistory, in.Actor.UserID, budgetBefore, b.TrackedFields(), now)
	b.UpdatedAt = now

	requestBefore := req.TrackedFields()
	switch in.Status {
	case entities.BudgetStatusAprovado:
		req.RequestStatus = entities.RequestStatusOrcamentoAprov
	case entities.BudgetStatusReprovado:
		req.RequestStatus = entities.RequestStatusOrcamentoReprov
		if in.Action == entities.ResolutionActionRefazer {
			// Keep both alive; clearing the mirror lets a redo budget land.
			req.BudgetID = ""
		}
	}
	req.Feedback = b.ResolvedFeedback(resolver, now)
	entities.Record(&req.ModificationHistory, in.Actor.UserID, requestBefore, req.TrackedFields(), now)
	req.UpdatedAt = now

	saveBudget, err := u.budgets.SaveTx(b)
	if err != nil {
		return entities.Budget{}, err
	}
	saveRequest, err := u.requests.SaveTx(req)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := u.writer.Execute(ctx, saveBudget, saveRequest); err != nil {
		return entities.Budget{}, err
	}
	b.Version++

	if in.Status == entities.BudgetStatusAprovado && u.gateway != nil && b.HasInvoicingData() {
		// Charge creation rides outside the commit: a provider outage must
		// not undo an approval the client already confirmed.
		if _, status, _, err := u.gateway.CreateCharge(ctx, b); err != nil {
			log.Printf("[usecase][budget] charge creation failed for %s: %v", b.BudgetNumber, err)
		} else {
			log.Printf("[usecase][budget] charge created for %s: %s", b.BudgetNumber, status)
		}
	}
	return b, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Budget{}, ErrInvalidID
	}
	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.Budget, error) {
	if strings.TrimSpace(requestID) == "" {
		return entities.Budget{}, ErrInvalidID
	}
	b, err := u.budgets.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// resolverLabel names who resolved the budget in the request feedback. The
// switch is exhaustive over Role so a new role fails here, not silently.
func resolverLabel(role entities.Role) (string, error) {
	switch role {
	case entities.RoleCliente:
		return "pelo Cliente", nil
	case entities.RoleGestor, entities.RoleSecretario:
		return "pela GTA", nil
	case entities.RoleUsuario, entities.RoleTecnico:
		return "", ErrForbiddenResolution
	}
	return "", entities.ErrUnknownRole
}
