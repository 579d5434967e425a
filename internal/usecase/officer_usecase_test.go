package usecase

import (
	"context"
	"errors"
	"testing"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"
	mock_interfaces "gta_clima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type officerMocks struct {
	officers  *mock_interfaces.MockIOfficerRepository
	claims    *mock_interfaces.MockIUniquenessClaimRepository
	sequences *mock_interfaces.MockISequenceGenerator
	writer    *mock_interfaces.MockITransactionWriter
}

func newOfficerUseCaseWithMocks(t *testing.T) (*OfficerUseCase, officerMocks) {
	ctrl := gomock.NewController(t)
	m := officerMocks{
		officers:  mock_interfaces.NewMockIOfficerRepository(ctrl),
		claims:    mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		sequences: mock_interfaces.NewMockISequenceGenerator(ctrl),
		writer:    mock_interfaces.NewMockITransactionWriter(ctrl),
	}
	uc := NewOfficerUseCase(m.officers, m.claims, m.sequences, m.writer)
	return uc, m
}

func TestOfficerUseCase_RegisterOfficer(t *testing.T) {
	secretary := entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario}
	base := RegisterOfficerInput{
		Actor:        secretary,
		UserID:       "user-9",
		Register:     "12345678900",
		Phone:        "11988887777",
		OfficerType:  entities.OfficerTypeTecnico,
		OfficerLevel: entities.OfficerLevelPleno,
	}

	t.Run("client cannot register staff", func(t *testing.T) {
		uc, _ := newOfficerUseCaseWithMocks(t)
		in := base
		in.Actor = entities.Actor{UserID: "cli-user", Level: entities.RoleCliente}
		if _, err := uc.RegisterOfficer(context.Background(), in); !errors.Is(err, ErrForbiddenRegistration) {
			t.Fatalf("expected ErrForbiddenRegistration, got %v", err)
		}
	})

	t.Run("missing register refused", func(t *testing.T) {
		uc, _ := newOfficerUseCaseWithMocks(t)
		in := base
		in.Register = "  "
		if _, err := uc.RegisterOfficer(context.Background(), in); !errors.Is(err, ErrOfficerDataMissing) {
			t.Fatalf("expected ErrOfficerDataMissing, got %v", err)
		}
	})

	t.Run("unknown type refused", func(t *testing.T) {
		uc, _ := newOfficerUseCaseWithMocks(t)
		in := base
		in.OfficerType = "Estagiário"
		if _, err := uc.RegisterOfficer(context.Background(), in); !errors.Is(err, ErrInvalidOfficerType) {
			t.Fatalf("expected ErrInvalidOfficerType, got %v", err)
		}
	})

	t.Run("duplicate phone refused", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), "officer#phone#11988887777").Return(true, nil)

		if _, err := uc.RegisterOfficer(context.Background(), base); !errors.Is(err, ErrOfficerPhoneExists) {
			t.Fatalf("expected ErrOfficerPhoneExists, got %v", err)
		}
	})

	t.Run("duplicate register refused", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), "officer#phone#11988887777").Return(false, nil)
		m.claims.EXPECT().Exists(gomock.Any(), "officer#register#12345678900").Return(true, nil)

		if _, err := uc.RegisterOfficer(context.Background(), base); !errors.Is(err, ErrOfficerRegisterExists) {
			t.Fatalf("expected ErrOfficerRegisterExists, got %v", err)
		}
	})

	t.Run("technician gets a TEC number and both claims", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixTechnician).Return("TEC-202405-00002", nil)
		m.claims.EXPECT().ClaimTx("officer#phone#11988887777").Return(interfaces.TxItem{})
		m.claims.EXPECT().ClaimTx("officer#register#12345678900").Return(interfaces.TxItem{})
		m.officers.EXPECT().InsertTx(gomock.Any()).DoAndReturn(func(o entities.Officer) (interfaces.TxItem, error) {
			if o.OfficerNumber != "TEC-202405-00002" {
				t.Fatalf("unexpected officer number: %s", o.OfficerNumber)
			}
			if o.CreatedBy.UserID != "sec-1" {
				t.Fatalf("unexpected creator: %s", o.CreatedBy.UserID)
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.RegisterOfficer(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OfficerType != entities.OfficerTypeTecnico || created.OfficerLevel != entities.OfficerLevelPleno {
			t.Fatalf("unexpected officer: %+v", created)
		}
	})

	t.Run("manager number uses the GO prefix", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixManager).Return("GO-202405-00001", nil)
		m.claims.EXPECT().ClaimTx(gomock.Any()).Return(interfaces.TxItem{}).Times(2)
		m.officers.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		in := base
		in.Actor = entities.Actor{UserID: "mgr-1", Level: entities.RoleGestor}
		in.OfficerType = entities.OfficerTypeGestor
		created, err := uc.RegisterOfficer(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OfficerNumber != "GO-202405-00001" {
			t.Fatalf("unexpected officer number: %s", created.OfficerNumber)
		}
	})

	t.Run("commit-time race surfaces the phone conflict", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixTechnician).Return("TEC-202405-00003", nil)
		m.claims.EXPECT().ClaimTx(gomock.Any()).Return(interfaces.TxItem{}).Times(2)
		m.officers.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrTransactionConflict)

		if _, err := uc.RegisterOfficer(context.Background(), base); !errors.Is(err, ErrOfficerPhoneExists) {
			t.Fatalf("expected ErrOfficerPhoneExists, got %v", err)
		}
	})
}

func TestOfficerUseCase_ListOfficers(t *testing.T) {
	t.Run("technician cannot list the roster", func(t *testing.T) {
		uc, _ := newOfficerUseCaseWithMocks(t)
		actor := entities.Actor{UserID: "tec-1", Level: entities.RoleTecnico}
		if _, err := uc.ListOfficers(context.Background(), actor); !errors.Is(err, ErrForbiddenRegistration) {
			t.Fatalf("expected ErrForbiddenRegistration, got %v", err)
		}
	})

	t.Run("secretary lists everyone", func(t *testing.T) {
		uc, m := newOfficerUseCaseWithMocks(t)
		m.officers.EXPECT().ListAll(gomock.Any()).Return([]entities.Officer{
			{ID: "off-1", OfficerNumber: "TEC-202405-00001"},
			{ID: "off-2", OfficerNumber: "SEC-202405-00001"},
		}, nil)

		actor := entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario}
		officers, err := uc.ListOfficers(context.Background(), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(officers) != 2 {
			t.Fatalf("expected 2 officers, got %d", len(officers))
		}
	})
}
