package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IEnvironmentUseCase registers climatized environments and their equipment.
//
// Registration upgrades any open request that referenced the room by its
// provisional address+name key: the request gains the registered environment
// id and its open-slot claim is migrated, all in the same commit. A client's
// first registered environment also promotes the client from Novo to Comum.

type IEnvironmentUseCase interface {
	RegisterEnvironment(ctx context.Context, in RegisterEnvironmentInput) (entities.Environment, error)
	GetByID(ctx context.Context, id string) (entities.Environment, error)
	ListByAddressID(ctx context.Context, addressID string) ([]entities.Environment, error)
}

type RegisterEnvironmentInput struct {
	Actor           entities.Actor
	ClientID        string
	AddressID       string
	RequestID       string
	EnvironmentName string
	EnvironmentSize float64
	EquipmentType   string
	EquipmentBrand  string
	EquipmentModel  string
	CapacityBTU     int
	Cicle           string
	Volt            string
	SerialModel     string
}

type EnvironmentUseCase struct {
	environments interfaces.IEnvironmentRepository
	requests     interfaces.IRequestRepository
	addresses    interfaces.IAddressRepository
	clients      interfaces.IClientRepository
	claims       interfaces.IUniquenessClaimRepository
	sequences    interfaces.ISequenceGenerator
	writer       interfaces.ITransactionWriter
}

var _ IEnvironmentUseCase = (*EnvironmentUseCase)(nil)

func NewEnvironmentUseCase(
	environments interfaces.IEnvironmentRepository,
	requests interfaces.IRequestRepository,
	addresses interfaces.IAddressRepository,
	clients interfaces.IClientRepository,
	claims interfaces.IUniquenessClaimRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
) *EnvironmentUseCase {
	return &EnvironmentUseCase{
		environments: environments,
		requests:     requests,
		addresses:    addresses,
		clients:      clients,
		claims:       claims,
		sequences:    sequences,
		writer:       writer,
	}
}

func (u *EnvironmentUseCase) RegisterEnvironment(ctx context.Context, in RegisterEnvironmentInput) (entities.Environment, error) {
	name := strings.TrimSpace(in.EnvironmentName)
	if name == "" || strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.AddressID) == "" {
		return entities.Environment{}, ErrInvalidID
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Environment{}, err
	}
	if client.ID == "" {
		return entities.Environment{}, ErrClientNotFound
	}

	address, err := u.addresses.GetByID(ctx, in.AddressID)
	if err != nil {
		return entities.Environment{}, err
	}
	if address.ID == "" {
		return entities.Environment{}, ErrAddressNotFound
	}

	scope := entities.EnvironmentClaimScope(in.ClientID, in.AddressID, name)
	taken, err := u.claims.Exists(ctx, scope)
	if err != nil {
		return entities.Environment{}, err
	}
	if taken {
		return entities.Environment{}, ErrEnvironmentExists
	}

	// An open request may already occupy this room under its provisional
	// address+name key. Explicit linking (requestId) or a technician closing
	// out a visit upgrades it; anyone else must wait for it to finish.
	upgrade, err := u.provisionalRequest(ctx, in, name)
	if err != nil {
		return entities.Environment{}, err
	}

	number, err := u.sequences.Allocate(ctx, interfaces.SeqPrefixEquipment)
	if err != nil {
		return entities.Environment{}, err
	}

	now := time.Now().UTC()
	env := entities.Environment{
		ID:              uuid.NewString(),
		ClientID:        in.ClientID,
		AddressID:       in.AddressID,
		EnvironmentName: name,
		EnvironmentSize: in.EnvironmentSize,
		EquipmentType:   in.EquipmentType,
		EquipmentBrand:  in.EquipmentBrand,
		EquipmentModel:  in.EquipmentModel,
		CapacityBTU:     in.CapacityBTU,
		Cicle:           in.Cicle,
		Volt:            in.Volt,
		SerialModel:     in.SerialModel,
		EquipmentNumber: number,
		CreatedBy:       entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	insertEnv, err := u.environments.InsertTx(env)
	if err != nil {
		return entities.Environment{}, err
	}
	items := []interfaces.TxItem{u.claims.ClaimTx(scope), insertEnv}

	if upgrade.ID != "" {
		oldScope := upgrade.OpenClaimScope()

		before := upgrade.TrackedFields()
		upgrade.EnvironmentID = env.ID
		upgrade.EnvID = ""
		entities.Record(&upgrade.ModificationHistory, in.Actor.UserID, before, upgrade.TrackedFields(), now)
		upgrade.UpdatedAt = now

		saveRequest, err := u.requests.SaveTx(upgrade)
		if err != nil {
			return entities.Environment{}, err
		}
		items = append(items,
			saveRequest,
			u.claims.ReleaseTx(oldScope),
			u.claims.ClaimTx(entities.OpenRequestClaimScope(in.AddressID, env.ID)),
		)
	}

	if client.ClientType == entities.ClientTypeNovo {
		before := client.TrackedFields()
		client.ClientType = entities.ClientTypeComum
		entities.Record(&client.ModificationHistory, in.Actor.UserID, before, client.TrackedFields(), now)
		client.UpdatedAt = now

		saveClient, err := u.clients.SaveTx(client)
		if err != nil {
			return entities.Environment{}, err
		}
		items = append(items, saveClient)
	}

	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.Environment{}, classifyConflict(err, ErrEnvironmentExists)
	}
	return env, nil
}

// provisionalRequest finds the open request to upgrade, if any. An explicit
// requestId wins; otherwise the open request holding this room's provisional
// key is upgraded when the actor is a technician and refused otherwise.
func (u *EnvironmentUseCase) provisionalRequest(ctx context.Context, in RegisterEnvironmentInput, name string) (entities.Request, error) {
	if in.RequestID != "" {
		req, err := u.requests.GetByID(ctx, in.RequestID)
		if err != nil {
			return entities.Request{}, err
		}
		if req.ID == "" {
			return entities.Request{}, ErrRequestNotFound
		}
		if req.RequestStatus == entities.RequestStatusFinalizado {
			return entities.Request{}, ErrRequestAlreadyClosed
		}
		// The request's open-slot claim lives under its own address; linking
		// it to a room elsewhere would strand that claim on release.
		if req.AddressID != in.AddressID {
			return entities.Request{}, ErrRequestAddressMismatch
		}
		return req, nil
	}

	envID := entities.ProvisionalEnvID(in.AddressID, name)
	open, err := u.requests.ListOpenByAddressID(ctx, in.AddressID)
	if err != nil {
		return entities.Request{}, err
	}
	for _, req := range open {
		if req.EnvID != envID {
			continue
		}
		if in.Actor.Level == entities.RoleTecnico {
			return req, nil
		}
		return entities.Request{}, ErrOpenProvisionalExists
	}
	return entities.Request{}, nil
}

func (u *EnvironmentUseCase) GetByID(ctx context.Context, id string) (entities.Environment, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Environment{}, ErrInvalidID
	}
	env, err := u.environments.GetByID(ctx, id)
	if err != nil {
		return entities.Environment{}, err
	}
	if env.ID == "" {
		return entities.Environment{}, ErrEnvironmentNotFound
	}
	return env, nil
}

func (u *EnvironmentUseCase) ListByAddressID(ctx context.Context, addressID string) ([]entities.Environment, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, ErrInvalidID
	}
	return u.environments.ListByAddressID(ctx, addressID)
}
