package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"
	"gta_clima/pkg"

	"github.com/google/uuid"
)

// IRequestUseCase exposes the request side of the service lifecycle.
//
//   - RegisterRequest opens a request against an environment (registered or
//     provisional) while claiming the one-open-request-per-environment slot.
//   - ScheduleVisit assigns a technician and a visit date/time.
//
// Status changes beyond the visit step are side effects of the budget, order
// and history flows, never direct edits.

type IRequestUseCase interface {
	RegisterRequest(ctx context.Context, in RegisterRequestInput) (entities.Request, error)
	ScheduleVisit(ctx context.Context, in ScheduleVisitInput) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Request, error)
}

type RegisterRequestInput struct {
	Actor                 entities.Actor
	ClientID              string
	AddressID             string
	EnvironmentID         string
	EnvironmentName       string
	RequestType           entities.RequestType
	ServiceIDs            []string
	MaintenanceProblem    string
	InstallationEquipment string
}

type ScheduleVisitInput struct {
	Actor     entities.Actor
	RequestID string
	OfficerID string
	DateVisit string
	TimeVisit string
}

type RequestUseCase struct {
	requests     interfaces.IRequestRepository
	environments interfaces.IEnvironmentRepository
	addresses    interfaces.IAddressRepository
	clients      interfaces.IClientRepository
	officers     interfaces.IOfficerRepository
	claims       interfaces.IUniquenessClaimRepository
	sequences    interfaces.ISequenceGenerator
	writer       interfaces.ITransactionWriter
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	requests interfaces.IRequestRepository,
	environments interfaces.IEnvironmentRepository,
	addresses interfaces.IAddressRepository,
	clients interfaces.IClientRepository,
	officers interfaces.IOfficerRepository,
	claims interfaces.IUniquenessClaimRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
) *RequestUseCase {
	return &RequestUseCase{
		requests:     requests,
		environments: environments,
		addresses:    addresses,
		clients:      clients,
		officers:     officers,
		claims:       claims,
		sequences:    sequences,
		writer:       writer,
	}
}

func (u *RequestUseCase) RegisterRequest(ctx context.Context, in RegisterRequestInput) (entities.Request, error) {
	if !in.RequestType.Valid() {
		return entities.Request{}, ErrInvalidRequestType
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Request{}, err
	}
	if client.ID == "" {
		return entities.Request{}, ErrClientNotFound
	}

	address, err := u.addresses.GetByID(ctx, in.AddressID)
	if err != nil {
		return entities.Request{}, err
	}
	if address.ID == "" {
		return entities.Request{}, ErrAddressNotFound
	}

	now := time.Now().UTC()
	req := entities.Request{
		ID:                    uuid.NewString(),
		ClientID:              in.ClientID,
		AddressID:             in.AddressID,
		RequestType:           in.RequestType,
		RequestStatus:         entities.RequestStatusPendente,
		ServiceIDs:            in.ServiceIDs,
		MaintenanceProblem:    strings.TrimSpace(in.MaintenanceProblem),
		InstallationEquipment: strings.TrimSpace(in.InstallationEquipment),
		RequestDate:           pkg.FormatDate(now),
		CreatedBy:             entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := req.ValidateServiceKind(); err != nil {
		return entities.Request{}, err
	}

	// Resolve the environment slot: a registered environment id, or the
	// provisional address+name composite when the room is not registered yet.
	switch {
	case in.EnvironmentID != "":
		env, err := u.environments.GetByID(ctx, in.EnvironmentID)
		if err != nil {
			return entities.Request{}, err
		}
		if env.ID == "" {
			return entities.Request{}, ErrEnvironmentNotFound
		}
		req.EnvironmentID = env.ID
	case in.EnvironmentName != "":
		req.EnvID = entities.ProvisionalEnvID(in.AddressID, in.EnvironmentName)
	default:
		return entities.Request{}, ErrEnvironmentNotFound
	}

	scope := req.OpenClaimScope()
	taken, err := u.claims.Exists(ctx, scope)
	if err != nil {
		return entities.Request{}, err
	}
	if taken {
		return entities.Request{}, ErrOpenRequestExists
	}

	req.RequestNumber, err = u.sequences.Allocate(ctx, interfaces.SeqPrefixRequest)
	if err != nil {
		return entities.Request{}, err
	}

	insert, err := u.requests.InsertTx(req)
	if err != nil {
		return entities.Request{}, err
	}
	if err := u.writer.Execute(ctx, u.claims.ClaimTx(scope), insert); err != nil {
		return entities.Request{}, classifyConflict(err, ErrOpenRequestExists)
	}
	return req, nil
}

func (u *RequestUseCase) ScheduleVisit(ctx context.Context, in ScheduleVisitInput) (entities.Request, error) {
	req, err := u.loadRequest(ctx, in.RequestID)
	if err != nil {
		return entities.Request{}, err
	}
	if req.RequestStatus == entities.RequestStatusFinalizado {
		return entities.Request{}, ErrRequestAlreadyClosed
	}

	officer, err := u.officers.GetByID(ctx, in.OfficerID)
	if err != nil {
		return entities.Request{}, err
	}
	if officer.ID == "" {
		return entities.Request{}, ErrOfficerNotFound
	}

	before := req.TrackedFields()
	req.OfficerID = officer.ID
	req.DateVisit = in.DateVisit
	req.TimeVisit = in.TimeVisit
	req.RequestStatus = entities.RequestStatusVisitaProgramada
	req.Feedback = entities.VisitFeedback(in.DateVisit, in.TimeVisit)

	now := time.Now().UTC()
	entities.Record(&req.ModificationHistory, in.Actor.UserID, before, req.TrackedFields(), now)
	req.UpdatedAt = now

	save, err := u.requests.SaveTx(req)
	if err != nil {
		return entities.Request{}, err
	}
	if err := u.writer.Execute(ctx, save); err != nil {
		return entities.Request{}, err
	}
	req.Version++
	return req, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	return u.loadRequest(ctx, id)
}

func (u *RequestUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Request, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrInvalidID
	}
	return u.requests.ListByClientID(ctx, clientID)
}

func (u *RequestUseCase) loadRequest(ctx context.Context, id string) (entities.Request, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Request{}, ErrInvalidID
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}
	if req.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return req, nil
}
