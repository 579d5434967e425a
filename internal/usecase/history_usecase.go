package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IHistoryUseCase records executed maintenance against an environment.
//
// One RegisterHistory commit closes everything it references: the request
// goes to "Finalizado" (freeing the environment slot) and the order goes to
// "Realizado". Records are immutable afterwards.

type IHistoryUseCase interface {
	RegisterHistory(ctx context.Context, in RegisterHistoryInput) (entities.HistoryMaintenance, error)
	ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.HistoryMaintenance, error)
}

type RegisterHistoryInput struct {
	Actor         entities.Actor
	EnvironmentID string
	RequestID     string
	OrderID       string
	Maintenance   []entities.MaintenanceItem
	Date          time.Time
}

type HistoryUseCase struct {
	history      interfaces.IHistoryRepository
	environments interfaces.IEnvironmentRepository
	requests     interfaces.IRequestRepository
	orders       interfaces.IOrderRepository
	claims       interfaces.IUniquenessClaimRepository
	writer       interfaces.ITransactionWriter
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(
	history interfaces.IHistoryRepository,
	environments interfaces.IEnvironmentRepository,
	requests interfaces.IRequestRepository,
	orders interfaces.IOrderRepository,
	claims interfaces.IUniquenessClaimRepository,
	writer interfaces.ITransactionWriter,
) *HistoryUseCase {
	return &HistoryUseCase{
		history:      history,
		environments: environments,
		requests:     requests,
		orders:       orders,
		claims:       claims,
		writer:       writer,
	}
}

func (u *HistoryUseCase) RegisterHistory(ctx context.Context, in RegisterHistoryInput) (entities.HistoryMaintenance, error) {
	if strings.TrimSpace(in.EnvironmentID) == "" {
		return entities.HistoryMaintenance{}, ErrInvalidID
	}
	if len(in.Maintenance) == 0 {
		return entities.HistoryMaintenance{}, ErrMaintenanceEmpty
	}

	env, err := u.environments.GetByID(ctx, in.EnvironmentID)
	if err != nil {
		return entities.HistoryMaintenance{}, err
	}
	if env.ID == "" {
		return entities.HistoryMaintenance{}, ErrEnvironmentNotFound
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	h := entities.HistoryMaintenance{
		ID:            uuid.NewString(),
		EnvironmentID: env.ID,
		RequestID:     strings.TrimSpace(in.RequestID),
		OrderID:       strings.TrimSpace(in.OrderID),
		Maintenance:   in.Maintenance,
		Date:          date,
		CreatedBy:     entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:     now,
	}

	insertHistory, err := u.history.InsertTx(h)
	if err != nil {
		return entities.HistoryMaintenance{}, err
	}
	items := []interfaces.TxItem{insertHistory}

	if h.RequestID != "" {
		req, err := u.requests.GetByID(ctx, h.RequestID)
		if err != nil {
			return entities.HistoryMaintenance{}, err
		}
		if req.ID == "" {
			return entities.HistoryMaintenance{}, ErrRequestNotFound
		}
		if req.RequestStatus == entities.RequestStatusFinalizado {
			return entities.HistoryMaintenance{}, ErrRequestAlreadyClosed
		}

		before := req.TrackedFields()
		req.RequestStatus = entities.RequestStatusFinalizado
		req.Feedback = entities.FinishedFeedback(now)
		entities.Record(&req.ModificationHistory, in.Actor.UserID, before, req.TrackedFields(), now)
		req.UpdatedAt = now

		saveRequest, err := u.requests.SaveTx(req)
		if err != nil {
			return entities.HistoryMaintenance{}, err
		}
		items = append(items, saveRequest, u.claims.ReleaseTx(req.OpenClaimScope()))
	}

	if h.OrderID != "" {
		o, err := u.orders.GetByID(ctx, h.OrderID)
		if err != nil {
			return entities.HistoryMaintenance{}, err
		}
		if o.ID == "" {
			return entities.HistoryMaintenance{}, ErrOrderNotFound
		}
		if o.OrderStatus == entities.OrderStatusRealizado {
			return entities.HistoryMaintenance{}, ErrOrderAlreadyDone
		}

		before := o.TrackedFields()
		o.OrderStatus = entities.OrderStatusRealizado
		entities.Record(&o.ModificationHistory, in.Actor.UserID, before, o.TrackedFields(), now)
		o.UpdatedAt = now

		saveOrder, err := u.orders.SaveTx(o)
		if err != nil {
			return entities.HistoryMaintenance{}, err
		}
		items = append(items, saveOrder)
	}

	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.HistoryMaintenance{}, err
	}
	return h, nil
}

func (u *HistoryUseCase) ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.HistoryMaintenance, error) {
	if strings.TrimSpace(environmentID) == "" {
		return nil, ErrInvalidID
	}
	return u.history.ListByEnvironmentID(ctx, environmentID)
}
