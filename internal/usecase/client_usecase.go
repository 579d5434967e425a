package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IClientUseCase manages customer records.
//
// Phone is always unique, tax id when present; both are held as claims.
// Deletion is refused while the client carries open work, and otherwise
// cascades every address, environment, request, budget and order the client
// owns in one commit — a refusal deletes nothing.

type IClientUseCase interface {
	CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error)
	UpdateClient(ctx context.Context, in UpdateClientInput) (entities.Client, error)
	DeleteClient(ctx context.Context, actor entities.Actor, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByUserID(ctx context.Context, userID string) (entities.Client, error)
}

type CreateClientInput struct {
	Actor            entities.Actor
	UserID           string
	Name             string
	Phone            string
	AlternativePhone string
	Email            string
	Register         string
	ClientType       entities.ClientType
}

type UpdateClientInput struct {
	Actor            entities.Actor
	ClientID         string
	Name             string
	Phone            string
	AlternativePhone string
	Email            string
	Register         string
	ClientType       entities.ClientType
}

type ClientUseCase struct {
	clients      interfaces.IClientRepository
	addresses    interfaces.IAddressRepository
	environments interfaces.IEnvironmentRepository
	requests     interfaces.IRequestRepository
	budgets      interfaces.IBudgetRepository
	orders       interfaces.IOrderRepository
	claims       interfaces.IUniquenessClaimRepository
	sequences    interfaces.ISequenceGenerator
	writer       interfaces.ITransactionWriter
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	clients interfaces.IClientRepository,
	addresses interfaces.IAddressRepository,
	environments interfaces.IEnvironmentRepository,
	requests interfaces.IRequestRepository,
	budgets interfaces.IBudgetRepository,
	orders interfaces.IOrderRepository,
	claims interfaces.IUniquenessClaimRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
) *ClientUseCase {
	return &ClientUseCase{
		clients:      clients,
		addresses:    addresses,
		environments: environments,
		requests:     requests,
		budgets:      budgets,
		orders:       orders,
		claims:       claims,
		sequences:    sequences,
		writer:       writer,
	}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return entities.Client{}, ErrClientPhoneMissing
	}
	clientType := in.ClientType
	if clientType == "" {
		clientType = entities.ClientTypeNovo
	}
	if !clientType.Valid() {
		return entities.Client{}, ErrInvalidClientType
	}

	phoneScope := entities.ClientPhoneClaimScope(phone)
	taken, err := u.claims.Exists(ctx, phoneScope)
	if err != nil {
		return entities.Client{}, err
	}
	if taken {
		return entities.Client{}, ErrClientPhoneExists
	}

	register := strings.TrimSpace(in.Register)
	if register != "" {
		registerScope := entities.ClientRegisterClaimScope(register)
		taken, err := u.claims.Exists(ctx, registerScope)
		if err != nil {
			return entities.Client{}, err
		}
		if taken {
			return entities.Client{}, ErrClientRegisterExists
		}
	}

	number, err := u.sequences.Allocate(ctx, interfaces.SeqPrefixClient)
	if err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		Name:             in.Name,
		Phone:            phone,
		ClientType:       clientType,
		AlternativePhone: in.AlternativePhone,
		Email:            in.Email,
		Register:         register,
		ClientNumber:     number,
		CreatedBy:        entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	insert, err := u.clients.InsertTx(c)
	if err != nil {
		return entities.Client{}, err
	}
	items := []interfaces.TxItem{u.claims.ClaimTx(phoneScope), insert}
	if register != "" {
		items = append(items, u.claims.ClaimTx(entities.ClientRegisterClaimScope(register)))
	}
	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.Client{}, classifyConflict(err, ErrClientPhoneExists)
	}
	return c, nil
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, in UpdateClientInput) (entities.Client, error) {
	c, err := u.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Client{}, err
	}

	oldPhone, oldRegister := c.Phone, c.Register
	before := c.TrackedFields()
	if in.Name != "" {
		c.Name = in.Name
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		c.Phone = phone
	}
	if in.AlternativePhone != "" {
		c.AlternativePhone = in.AlternativePhone
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if register := strings.TrimSpace(in.Register); register != "" {
		c.Register = register
	}
	if in.ClientType != "" {
		if !in.ClientType.Valid() {
			return entities.Client{}, ErrInvalidClientType
		}
		c.ClientType = in.ClientType
	}

	var items []interfaces.TxItem
	if c.Phone != oldPhone {
		scope := entities.ClientPhoneClaimScope(c.Phone)
		taken, err := u.claims.Exists(ctx, scope)
		if err != nil {
			return entities.Client{}, err
		}
		if taken {
			return entities.Client{}, ErrClientPhoneExists
		}
		items = append(items, u.claims.ReleaseTx(entities.ClientPhoneClaimScope(oldPhone)), u.claims.ClaimTx(scope))
	}
	if c.Register != oldRegister {
		scope := entities.ClientRegisterClaimScope(c.Register)
		taken, err := u.claims.Exists(ctx, scope)
		if err != nil {
			return entities.Client{}, err
		}
		if taken {
			return entities.Client{}, ErrClientRegisterExists
		}
		if oldRegister != "" {
			items = append(items, u.claims.ReleaseTx(entities.ClientRegisterClaimScope(oldRegister)))
		}
		items = append(items, u.claims.ClaimTx(scope))
	}

	now := time.Now().UTC()
	entities.Record(&c.ModificationHistory, in.Actor.UserID, before, c.TrackedFields(), now)
	c.UpdatedAt = now

	save, err := u.clients.SaveTx(c)
	if err != nil {
		return entities.Client{}, err
	}
	items = append(items, save)
	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.Client{}, classifyConflict(err, ErrClientPhoneExists)
	}
	c.Version++
	return c, nil
}

func (u *ClientUseCase) DeleteClient(ctx context.Context, actor entities.Actor, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	requests, err := u.requests.ListByClientID(ctx, c.ID)
	if err != nil {
		return err
	}

	// A finalized request can still carry a pending budget or a scheduled
	// order; those count as open work too.
	budgets := make([]entities.Budget, len(requests))
	orders := make([]entities.Order, len(requests))
	for i, req := range requests {
		if req.RequestStatus.Open() {
			return ErrOpenWorkOnClient
		}
		b, err := u.budgets.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if b.ID != "" && b.BudgetStatus == entities.BudgetStatusPendente {
			return ErrOpenWorkOnClient
		}
		o, err := u.orders.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if o.ID != "" && o.OrderStatus == entities.OrderStatusProgramado {
			return ErrOpenWorkOnClient
		}
		budgets[i], orders[i] = b, o
	}

	var items []interfaces.TxItem

	addresses, err := u.addresses.ListByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	for _, a := range addresses {
		items = append(items, u.claims.ReleaseTx(a.ClaimScope()), u.addresses.DeleteTx(a.ID))
	}

	environments, err := u.environments.ListByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	for _, env := range environments {
		items = append(items, u.claims.ReleaseTx(env.ClaimScope()), u.environments.DeleteTx(env.ID))
	}

	for i, req := range requests {
		if budgets[i].ID != "" {
			items = append(items, u.budgets.DeleteTx(budgets[i].ID))
		}
		if orders[i].ID != "" {
			items = append(items, u.orders.DeleteTx(orders[i].ID))
		}
		items = append(items, u.requests.DeleteTx(req.ID))
	}

	items = append(items, u.claims.ReleaseTx(entities.ClientPhoneClaimScope(c.Phone)))
	if c.Register != "" {
		items = append(items, u.claims.ReleaseTx(entities.ClientRegisterClaimScope(c.Register)))
	}
	items = append(items, u.clients.DeleteTx(c.ID))

	return u.writer.Execute(ctx, items...)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Client{}, ErrInvalidID
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) GetByUserID(ctx context.Context, userID string) (entities.Client, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Client{}, ErrInvalidID
	}
	c, err := u.clients.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
