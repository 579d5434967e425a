package usecase

import (
	"context"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOfficerUseCase manages the staff roster. Registration is restricted to
// secretaries and managers; phone and register (CPF) are unique across
// officers, held as claims.

type IOfficerUseCase interface {
	RegisterOfficer(ctx context.Context, in RegisterOfficerInput) (entities.Officer, error)
	ListOfficers(ctx context.Context, actor entities.Actor) ([]entities.Officer, error)
}

type RegisterOfficerInput struct {
	Actor        entities.Actor
	UserID       string
	Register     string
	Phone        string
	OfficerType  entities.OfficerType
	OfficerLevel entities.OfficerLevel
}

type OfficerUseCase struct {
	officers  interfaces.IOfficerRepository
	claims    interfaces.IUniquenessClaimRepository
	sequences interfaces.ISequenceGenerator
	writer    interfaces.ITransactionWriter
}

var _ IOfficerUseCase = (*OfficerUseCase)(nil)

func NewOfficerUseCase(
	officers interfaces.IOfficerRepository,
	claims interfaces.IUniquenessClaimRepository,
	sequences interfaces.ISequenceGenerator,
	writer interfaces.ITransactionWriter,
) *OfficerUseCase {
	return &OfficerUseCase{
		officers:  officers,
		claims:    claims,
		sequences: sequences,
		writer:    writer,
	}
}

// officerNumberPrefix picks the sequence family for the officer number, one
// per staff type (TEC-, SEC-, GO-).
func officerNumberPrefix(t entities.OfficerType) string {
	switch t {
	case entities.OfficerTypeTecnico:
		return interfaces.SeqPrefixTechnician
	case entities.OfficerTypeSecretario:
		return interfaces.SeqPrefixSecretary
	case entities.OfficerTypeGestor:
		return interfaces.SeqPrefixManager
	}
	return ""
}

func canManageStaff(actor entities.Actor) bool {
	return actor.Level == entities.RoleSecretario || actor.Level == entities.RoleGestor
}

func (u *OfficerUseCase) RegisterOfficer(ctx context.Context, in RegisterOfficerInput) (entities.Officer, error) {
	if !canManageStaff(in.Actor) {
		return entities.Officer{}, ErrForbiddenRegistration
	}

	userID := strings.TrimSpace(in.UserID)
	register := strings.TrimSpace(in.Register)
	phone := strings.TrimSpace(in.Phone)
	if userID == "" || register == "" || phone == "" {
		return entities.Officer{}, ErrOfficerDataMissing
	}
	if !in.OfficerType.Valid() {
		return entities.Officer{}, ErrInvalidOfficerType
	}
	if !in.OfficerLevel.Valid() {
		return entities.Officer{}, ErrInvalidOfficerLevel
	}

	phoneScope := entities.OfficerPhoneClaimScope(phone)
	taken, err := u.claims.Exists(ctx, phoneScope)
	if err != nil {
		return entities.Officer{}, err
	}
	if taken {
		return entities.Officer{}, ErrOfficerPhoneExists
	}
	registerScope := entities.OfficerRegisterClaimScope(register)
	taken, err = u.claims.Exists(ctx, registerScope)
	if err != nil {
		return entities.Officer{}, err
	}
	if taken {
		return entities.Officer{}, ErrOfficerRegisterExists
	}

	number, err := u.sequences.Allocate(ctx, officerNumberPrefix(in.OfficerType))
	if err != nil {
		return entities.Officer{}, err
	}

	now := time.Now().UTC()
	o := entities.Officer{
		ID:            uuid.NewString(),
		UserID:        userID,
		Register:      register,
		Phone:         phone,
		OfficerNumber: number,
		OfficerType:   in.OfficerType,
		OfficerLevel:  in.OfficerLevel,
		CreatedBy:     entities.CreatedBy{UserID: in.Actor.UserID, CreatedAt: now},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	insert, err := u.officers.InsertTx(o)
	if err != nil {
		return entities.Officer{}, err
	}
	items := []interfaces.TxItem{
		u.claims.ClaimTx(phoneScope),
		u.claims.ClaimTx(registerScope),
		insert,
	}
	if err := u.writer.Execute(ctx, items...); err != nil {
		return entities.Officer{}, classifyConflict(err, ErrOfficerPhoneExists)
	}
	return o, nil
}

func (u *OfficerUseCase) ListOfficers(ctx context.Context, actor entities.Actor) ([]entities.Officer, error) {
	if !canManageStaff(actor) {
		return nil, ErrForbiddenRegistration
	}
	return u.officers.ListAll(ctx)
}
