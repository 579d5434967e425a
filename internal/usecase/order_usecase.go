package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOrderUseCase exposes work-order scheduling.
//
// An order is created only against a request carrying an approved budget, an
// existing technician and service items; creation moves the request to
// "Ordem de Serviço Programada" in the same commit. The Programado ->
// Realizado transition belongs to the history flow and is rejected here.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	UpdateOrder(ctx context.Context, in UpdateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByOfficerID(ctx context.Context, officerID string) ([]entities.Order, error)
}

type CreateOrderInput struct {
	Actor      entities.Actor
	RequestID  string
	OfficerID  string
	ServiceIDs []string
	Date       string
	Time       string
}

type UpdateOrderInput struct {
	Actor       entities.Actor
	OrderID     string
	OrderStatus entities.OrderStatus
	Date        string
	Time        string
	Feedback    string
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	requests  interfaces.IRequestRepository
	budgets   interfaces.IBudgetRepository
	officers  interfaces.IOfficerRepository
	services  interfaces.IServiceRepository
	sequences interfaces.ISequenceGenerator
	writer    interfaces.ITransactionWriter
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	requests interfaces.IRequestRepository,
	budgets interfaces.IBudgetRepository,
	officers interfaces.IOfficerRepository,
	services interfaces.IServiceRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		requests:  requests,
		budgets:   budgets,
		officers:  officers,
		services:  services,
		sequences: sequences,
		writer:    writer,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if strings.TrimSpace(in.RequestID) == "" {
		return entities.Order{}, ErrInvalidID
	}
	if len(in.ServiceIDs) == 0 {
		return entities.Order{}, ErrOrderServicesMissing
	}

	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Order{}, err
	}
	if req.ID == "" {
		return entities.Order{}, ErrRequestNotFound
	}
	if req.RequestStatus == entities.RequestStatusFinalizado {
		return entities.Order{}, ErrRequestAlreadyClosed
	}

	existing, err := u.orders.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	budget, err := u.budgets.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		return entities.Order{}, err
	}
	if budget.ID == "" || budget.BudgetStatus != entities.BudgetStatusAprovado {
		return entities.Order{}, ErrBudgetNotApproved
	}

	officer, err := u.officers.GetByID(ctx, in.OfficerID)
	if err != nil {
		return entities.Order{}, err
	}
	if officer.ID == "" {
		return entities.Order{}, ErrOfficerNotFound
	}
	if officer.OfficerType != entities.OfficerTypeTecnico {
		return entities.Order{}, ErrOfficerNotTechnician
	}

	found, err := u.services.GetByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return entities.Order{}, err
	}
	if len(found) != len(in.ServiceIDs) {
		return entities.Order{}, ErrServiceNotFound
	}

	number, err := u.sequences.Allocate(ctx, interfaces.SeqPrefixOrder)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		RequestID:     req.ID,
		OfficerID:     officer.ID,
		OrderStatus:   entities.OrderStatusProgramado,
		ServiceIDs:    in.ServiceIDs,
		OrderNumber:   number,
		Date:          in.Date,
		Time:          in.Time,
		BudgetID:      budget.ID,
		EnvironmentID: req.EnvironmentID,
		CreatedBy:     entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	before := req.TrackedFields()
	req.RequestStatus = entities.RequestStatusOrdemProgramada
	req.OrderID = o.ID
	req.OfficerID = officer.ID
	req.Feedback = o.ScheduledFeedback()
	entities.Record(&req.ModificationHistory, in.Actor.UserID, before, req.TrackedFields(), now)
	req.UpdatedAt = now

	insertOrder, err := u.orders.InsertTx(o)
	if err != nil {
		return entities.Order{}, err
	}
	saveRequest, err := u.requests.SaveTx(req)
	if err != nil {
		return entities.Order{}, err
	}
	if err := u.writer.Execute(ctx, insertOrder, saveRequest); err != nil {
		return entities.Order{}, classifyConflict(err, ErrOrderAlreadyExists)
	}
	return o, nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, in UpdateOrderInput) (entities.Order, error) {
	if in.OrderStatus == entities.OrderStatusRealizado {
		return entities.Order{}, ErrOrderStatusDirect
	}

	o, err := u.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderStatus == entities.OrderStatusRealizado {
		return entities.Order{}, ErrOrderAlreadyDone
	}

	before := o.TrackedFields()
	if in.Date != "" {
		o.Date = in.Date
	}
	if in.Time != "" {
		o.Time = in.Time
	}
	if in.Feedback != "" {
		o.Feedback = in.Feedback
	}

	now := time.Now().UTC()
	entities.Record(&o.ModificationHistory, in.Actor.UserID, before, o.TrackedFields(), now)
	o.UpdatedAt = now

	save, err := u.orders.SaveTx(o)
	if err != nil {
		return entities.Order{}, err
	}
	if err := u.writer.Execute(ctx, save); err != nil {
		return entities.Order{}, err
	}
	o.Version++
	return o, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, ErrInvalidID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByOfficerID(ctx context.Context, officerID string) ([]entities.Order, error) {
	if strings.TrimSpace(officerID) == "" {
		return nil, ErrInvalidID
	}
	return u.orders.ListByOfficerID(ctx, officerID)
}
