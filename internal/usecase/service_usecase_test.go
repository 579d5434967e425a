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

type serviceMocks struct {
	services *mock_interfaces.MockIServiceRepository
	claims   *mock_interfaces.MockIUniquenessClaimRepository
	writer   *mock_interfaces.MockITransactionWriter
}

func newServiceUseCaseWithMocks(t *testing.T) (*ServiceUseCase, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		claims:   mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		writer:   mock_interfaces.NewMockITransactionWriter(ctrl),
	}
	uc := NewServiceUseCase(m.services, m.claims, m.writer)
	return uc, m
}

func TestServiceUseCase_RegisterService(t *testing.T) {
	secretary := entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario}
	base := RegisterServiceInput{
		Actor:              secretary,
		ServiceType:        entities.ServiceTypeManutencao,
		ServiceName:        "Limpeza de filtro",
		ServiceDescription: "Limpeza completa do filtro de ar",
		ServicePrice:       150,
	}

	t.Run("technician cannot register services", func(t *testing.T) {
		uc, _ := newServiceUseCaseWithMocks(t)
		in := base
		in.Actor = entities.Actor{UserID: "tec-1", Level: entities.RoleTecnico}
		if _, err := uc.RegisterService(context.Background(), in); !errors.Is(err, ErrForbiddenRegistration) {
			t.Fatalf("expected ErrForbiddenRegistration, got %v", err)
		}
	})

	t.Run("unknown type refused", func(t *testing.T) {
		uc, _ := newServiceUseCaseWithMocks(t)
		in := base
		in.ServiceType = "Conserto"
		if _, err := uc.RegisterService(context.Background(), in); !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("negative price refused", func(t *testing.T) {
		uc, _ := newServiceUseCaseWithMocks(t)
		in := base
		in.ServicePrice = -1
		if _, err := uc.RegisterService(context.Background(), in); !errors.Is(err, ErrServicePriceNegative) {
			t.Fatalf("expected ErrServicePriceNegative, got %v", err)
		}
	})

	t.Run("duplicate name differs only by accents", func(t *testing.T) {
		uc, m := newServiceUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), "service#manutencao#limpeza de filtro").Return(true, nil)

		in := base
		in.ServiceName = "LIMPEZA DE FILTRO"
		if _, err := uc.RegisterService(context.Background(), in); !errors.Is(err, ErrServiceExists) {
			t.Fatalf("expected ErrServiceExists, got %v", err)
		}
	})

	t.Run("manager registers with claim and insert", func(t *testing.T) {
		uc, m := newServiceUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), "service#manutencao#limpeza de filtro").Return(false, nil)
		m.claims.EXPECT().ClaimTx("service#manutencao#limpeza de filtro").Return(interfaces.TxItem{})
		m.services.EXPECT().InsertTx(gomock.Any()).DoAndReturn(func(s entities.Service) (interfaces.TxItem, error) {
			if s.ServiceName != "Limpeza de filtro" || s.ServicePrice != 150 {
				t.Fatalf("unexpected service: %+v", s)
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		in := base
		in.Actor = entities.Actor{UserID: "mgr-1", Level: entities.RoleGestor}
		created, err := uc.RegisterService(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.CreatedBy.UserID != "mgr-1" {
			t.Fatalf("unexpected service: %+v", created)
		}
	})

	t.Run("commit-time race surfaces the name conflict", func(t *testing.T) {
		uc, m := newServiceUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.claims.EXPECT().ClaimTx(gomock.Any()).Return(interfaces.TxItem{})
		m.services.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrTransactionConflict)

		if _, err := uc.RegisterService(context.Background(), base); !errors.Is(err, ErrServiceExists) {
			t.Fatalf("expected ErrServiceExists, got %v", err)
		}
	})
}

func TestServiceUseCase_ListServices(t *testing.T) {
	t.Run("client cannot read the catalog", func(t *testing.T) {
		uc, _ := newServiceUseCaseWithMocks(t)
		actor := entities.Actor{UserID: "cli-user", Level: entities.RoleCliente}
		if _, err := uc.ListServices(context.Background(), actor); !errors.Is(err, ErrForbiddenRegistration) {
			t.Fatalf("expected ErrForbiddenRegistration, got %v", err)
		}
	})

	t.Run("technician reads the catalog", func(t *testing.T) {
		uc, m := newServiceUseCaseWithMocks(t)
		m.services.EXPECT().ListAll(gomock.Any()).Return([]entities.Service{
			{ID: "svc-1", ServiceName: "Limpeza de filtro"},
		}, nil)

		actor := entities.Actor{UserID: "tec-1", Level: entities.RoleTecnico}
		services, err := uc.ListServices(context.Background(), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(services) != 1 {
			t.Fatalf("expected 1 service, got %d", len(services))
		}
	})
}
