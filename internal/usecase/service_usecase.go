package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IServiceUseCase manages the service catalog. Registration is restricted to
// secretaries and managers; the (type, name) pair is unique under
// accent-insensitive comparison and held as a claim. Any staff member can
// read the catalog.

type IServiceUseCase interface {
	RegisterService(ctx context.Context, in RegisterServiceInput) (entities.Service, error)
	ListServices(ctx context.Context, actor entities.Actor) ([]entities.Service, error)
}

type RegisterServiceInput struct {
	Actor              entities.Actor
	ServiceType        entities.ServiceType
	ServiceName        string
	ServiceDescription string
	ServicePrice       float64
}

type ServiceUseCase struct {
	services interfaces.IServiceRepository
	claims   interfaces.IUniquenessClaimRepository
	writer   interfaces.ITransactionWriter
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(
	services interfaces.IServiceRepository,
	claims interfaces.IUniquenessClaimRepository,
	writer interfaces.ITransactionWriter,
) *ServiceUseCase {
	return &ServiceUseCase{
		services: services,
		claims:   claims,
		writer:   writer,
	}
}

func (u *ServiceUseCase) RegisterService(ctx context.Context, in RegisterServiceInput) (entities.Service, error) {
	if !canManageStaff(in.Actor) {
		return entities.Service{}, ErrForbiddenRegistration
	}
	if !in.ServiceType.Valid() {
		return entities.Service{}, ErrInvalidServiceType
	}
	name := strings.TrimSpace(in.ServiceName)
	if name == "" {
		return entities.Service{}, ErrServiceNameMissing
	}
	if in.ServicePrice < 0 {
		return entities.Service{}, ErrServicePriceNegative
	}

	scope := entities.ServiceClaimScope(in.ServiceType, name)
	taken, err := u.claims.Exists(ctx, scope)
	if err != nil {
		return entities.Service{}, err
	}
	if taken {
		return entities.Service{}, ErrServiceExists
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:                 uuid.NewString(),
		ServiceType:        in.ServiceType,
		ServiceName:        name,
		ServiceDescription: in.ServiceDescription,
		ServicePrice:       in.ServicePrice,
		CreatedBy:          entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	insert, err := u.services.InsertTx(s)
	if err != nil {
		return entities.Service{}, err
	}
	if err := u.writer.Execute(ctx, u.claims.ClaimTx(scope), insert); err != nil {
		return entities.Service{}, classifyConflict(err, ErrServiceExists)
	}
	return s, nil
}

func (u *ServiceUseCase) ListServices(ctx context.Context, actor entities.Actor) ([]entities.Service, error) {
	if !actor.Level.IsStaff() {
		return nil, ErrForbiddenRegistration
	}
	return u.services.ListAll(ctx)
}
