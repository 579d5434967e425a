package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IAddressUseCase manages service addresses.
//
// An address belongs to exactly one of client/officer and is unique per its
// normalized composite key. Update and delete are refused while open work
// references the address; delete cascades environments, requests, budgets
// and orders in the same commit, or touches nothing at all.

type IAddressUseCase interface {
	CreateAddress(ctx context.Context, in CreateAddressInput) (entities.Address, error)
	UpdateAddress(ctx context.Context, in UpdateAddressInput) (entities.Address, error)
	DeleteAddress(ctx context.Context, actor entities.Actor, id string) error
	GetByID(ctx context.Context, id string) (entities.Address, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Address, error)
}

type CreateAddressInput struct {
	Actor       entities.Actor
	ClientID    string
	OfficerID   string
	AddressType entities.AddressType
	Street      string
	Number      int
	Complement  string
	District    string
	City        string
	State       string
	PostalCode  string
	Coordinates []float64
}

type UpdateAddressInput struct {
	Actor       entities.Actor
	AddressID   string
	AddressType entities.AddressType
	Street      string
	Number      int
	Complement  string
	District    string
	City        string
	State       string
	PostalCode  string
	Coordinates []float64
}

type AddressUseCase struct {
	addresses    interfaces.IAddressRepository
	environments interfaces.IEnvironmentRepository
	requests     interfaces.IRequestRepository
	budgets      interfaces.IBudgetRepository
	orders       interfaces.IOrderRepository
	clients      interfaces.IClientRepository
	officers     interfaces.IOfficerRepository
	claims       interfaces.IUniquenessClaimRepository
	writer       interfaces.ITransactionWriter
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(
	addresses interfaces.IAddressRepository,
	environments interfaces.IEnvironmentRepository,
	requests interfaces.IRequestRepository,
	budgets interfaces.IBudgetRepository,
	orders interfaces.IOrderRepository,
	clients interfaces.IClientRepository,
	officers interfaces.IOfficerRepository,
	claims interfaces.IUniquenessClaimRepository,
	writer interfaces.ITransactionWriter,
) *AddressUseCase {
	return &AddressUseCase{
		addresses:    addresses,
		environments: environments,
		requests:     requests,
		budgets:      budgets,
		orders:       orders,
		clients:      clients,
		officers:     officers,
		claims:       claims,
		writer:       writer,
	}
}

func (u *AddressUseCase) CreateAddress(ctx context.Context, in CreateAddressInput) (entities.Address, error) {
	if !in.AddressType.Valid() {
		return entities.Address{}, ErrInvalidAddressType
	}

	now := time.Now().UTC()
	a := entities.Address{
		ID:          uuid.NewString(),
		ClientID:    strings.TrimSpace(in.ClientID),
		OfficerID:   strings.TrimSpace(in.OfficerID),
		AddressType: in.AddressType,
		Street:      in.Street,
		Number:      in.Number,
		Complement:  in.Complement,
		District:    in.District,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Coordinates: in.Coordinates,
		CreatedBy:   entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.ValidateOwner(); err != nil {
		return entities.Address{}, err
	}
	if err := a.ValidateCoordinates(); err != nil {
		return entities.Address{}, err
	}

	if a.ClientID != "" {
		client, err := u.clients.GetByID(ctx, a.ClientID)
		if err != nil {
			return entities.Address{}, err
		}
		if client.ID == "" {
			return entities.Address{}, ErrClientNotFound
		}
	} else {
		officer, err := u.officers.GetByID(ctx, a.OfficerID)
		if err != nil {
			return entities.Address{}, err
		}
		if officer.ID == "" {
			return entities.Address{}, ErrOfficerNotFound
		}
	}

	scope := a.ClaimScope()
	taken, err := u.claims.Exists(ctx, scope)
	if err != nil {
		return entities.Address{}, err
	}
	if taken {
		return entities.Address{}, ErrAddressExists
	}

	insert, err := u.addresses.InsertTx(a)
	if err != nil {
		return entities.Address{}, err
	}
	if err := u.writer.Execute(ctx, u.claims.ClaimTx(scope), insert); err != nil {
		return entities.Address{}, classifyConflict(err, ErrAddressExists)
	}
	return a, nil
}

func (u *AddressUseCase) UpdateAddress(ctx context.Context, in UpdateAddressInput) (entities.Address, error) {
	a, err := u.GetByID(ctx, in.AddressID)
	if err != nil {
		return entities.Address{}, err
	}
	if err := u.refuseOpenWork(ctx, a.ID); err != nil {
		return entities.Address{}, err
	}

	oldScope := a.ClaimScope()
	before := a.TrackedFields()
	if in.AddressType != "" {
		if !in.AddressType.Valid() {
			return entities.Address{}, ErrInvalidAddressType
		}
		a.AddressType = in.AddressType
	}
	if in.Street != "" {
		a.Street = in.Street
	}
	if in.Number != 0 {
		a.Number = in.Number
	}
	a.Complement = in.Complement
	if in.District != "" {
		a.District = in.District
	}
	if in.City != "" {
		a.City = in.City
	}
	if in.State != "" {
		a.State = in.State
	}
	if in.PostalCode != "" {
		a.PostalCode = in.PostalCode
	}
	if in.Coordinates != nil {
		a.Coordinates = in.Coordinates
		if err := a.ValidateCoordinates(); err != nil {
			return entities.Address{}, err
		}
	}

	newScope := a.ClaimScope()
	if newScope != oldScope {
		taken, err := u.claims.Exists(ctx, newScope)
		if err != nil {
			return entities.Address{}, err
		}
		if taken {
			return entities.Address{}, ErrAddressExists
		}
	}

	now := time.Now().UTC()
	entities.Record(&a.ModificationHistory, in.Actor.UserID, before, a.TrackedFields(), now)
	a.UpdatedAt = now

	save, err := u.addresses.SaveTx(a)
	if err != nil {
		return entities.Address{}, err
	}
	items := []interfaces.TxItem{save}
	if newScope != oldScope {
		items = append(items, u.claims.ReleaseTx(oldScope), u.claims.ClaimTx(newScope))
	}
	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.Address{}, classifyConflict(err, ErrAddressExists)
	}
	a.Version++
	return a, nil
}

func (u *AddressUseCase) DeleteAddress(ctx context.Context, actor entities.Actor, id string) error {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.refuseOpenWork(ctx, a.ID); err != nil {
		return err
	}

	cascade, err := u.cascadeItems(ctx, a.ID)
	if err != nil {
		return err
	}
	items := append(cascade,
		u.claims.ReleaseTx(a.ClaimScope()),
		u.addresses.DeleteTx(a.ID),
	)
	return u.writer.Execute(ctx, items...)
}

// refuseOpenWork rejects structural changes while any work on the address is
// still open: an open request, a pending budget or a scheduled order. A
// finalized request can still carry either of the latter two.
func (u *AddressUseCase) refuseOpenWork(ctx context.Context, addressID string) error {
	open, err := u.requests.ListOpenByAddressID(ctx, addressID)
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return ErrOpenWorkOnAddress
	}

	requests, err := u.requests.ListByAddressID(ctx, addressID)
	if err != nil {
		return err
	}
	for _, req := range requests {
		b, err := u.budgets.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if b.ID != "" && b.BudgetStatus == entities.BudgetStatusPendente {
			return ErrOpenWorkOnAddress
		}
		o, err := u.orders.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if o.ID != "" && o.OrderStatus == entities.OrderStatusProgramado {
			return ErrOpenWorkOnAddress
		}
	}
	return nil
}

// cascadeItems collects deletes for everything hanging off the address:
// environments with their claims, closed requests with their budgets and
// orders. Everything is closed here — refuseOpenWork ran first.
func (u *AddressUseCase) cascadeItems(ctx context.Context, addressID string) ([]interfaces.TxItem, error) {
	var items []interfaces.TxItem

	environments, err := u.environments.ListByAddressID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	for _, env := range environments {
		items = append(items, u.claims.ReleaseTx(env.ClaimScope()), u.environments.DeleteTx(env.ID))
	}

	requests, err := u.requests.ListByAddressID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		b, err := u.budgets.GetByRequestID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if b.ID != "" {
			items = append(items, u.budgets.DeleteTx(b.ID))
		}
		o, err := u.orders.GetByRequestID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if o.ID != "" {
			items = append(items, u.orders.DeleteTx(o.ID))
		}
		items = append(items, u.requests.DeleteTx(req.ID))
	}
	return items, nil
}

func (u *AddressUseCase) GetByID(ctx context.Context, id string) (entities.Address, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Address{}, ErrInvalidID
	}
	a, err := u.addresses.GetByID(ctx, id)
	if err != nil {
		return entities.Address{}, err
	}
	if a.ID == "" {
		return entities.Address{}, ErrAddressNotFound
	}
	return a, nil
}

func (u *AddressUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Address, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrInvalidID
	}
	return u.addresses.ListByClientID(ctx, clientID)
}
