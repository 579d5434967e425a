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

type environmentMocks struct {
	environments *mock_interfaces.MockIEnvironmentRepository
	requests     *mock_interfaces.MockIRequestRepository
	addresses    *mock_interfaces.MockIAddressRepository
	clients      *mock_interfaces.MockIClientRepository
	claims       *mock_interfaces.MockIUniquenessClaimRepository
	sequences    *mock_interfaces.MockISequenceGenerator
	writer       *mock_interfaces.MockITransactionWriter
}

func newEnvironmentUseCaseWithMocks(t *testing.T) (*EnvironmentUseCase, environmentMocks) {
	ctrl := gomock.NewController(t)
	m := environmentMocks{
		environments: mock_interfaces.NewMockIEnvironmentRepository(ctrl),
		requests:     mock_interfaces.NewMockIRequestRepository(ctrl),
		addresses:    mock_interfaces.NewMockIAddressRepository(ctrl),
		clients:      mock_interfaces.NewMockIClientRepository(ctrl),
		claims:       mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		sequences:    mock_interfaces.NewMockISequenceGenerator(ctrl),
		writer:       mock_interfaces.NewMockITransactionWriter(ctrl),
	}
	uc := NewEnvironmentUseCase(m.environments, m.requests, m.addresses, m.clients, m.claims, m.sequences, m.writer)
	return uc, m
}

func TestEnvironmentUseCase_RegisterEnvironment(t *testing.T) {
	base := RegisterEnvironmentInput{
		Actor:           entities.Actor{UserID: "tec-1", Level: entities.RoleTecnico},
		ClientID:        "cli-1",
		AddressID:       "addr-1",
		EnvironmentName: "Sala de Reunião",
		EnvironmentSize: 25,
		CapacityBTU:     12000,
	}
	comum := entities.Client{ID: "cli-1", ClientType: entities.ClientTypeComum}

	t.Run("duplicate name for client and address", func(t *testing.T) {
		uc, m := newEnvironmentUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(comum, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), "environment#cli-1#addr-1#sala de reuniao").Return(true, nil)

		if _, err := uc.RegisterEnvironment(context.Background(), base); !errors.Is(err, ErrEnvironmentExists) {
			t.Fatalf("expected ErrEnvironmentExists, got %v", err)
		}
	})

	t.Run("open provisional request blocks non-technician", func(t *testing.T) {
		uc, m := newEnvironmentUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(comum, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.requests.EXPECT().ListOpenByAddressID(gomock.Any(), "addr-1").Return([]entities.Request{
			{ID: "req-1", AddressID: "addr-1", EnvID: "addr-1-sala-de-reunião", RequestStatus: entities.RequestStatusPendente},
		}, nil)

		in := base
		in.Actor = entities.Actor{UserID: "cli-user", Level: entities.RoleCliente}
		if _, err := uc.RegisterEnvironment(context.Background(), in); !errors.Is(err, ErrOpenProvisionalExists) {
			t.Fatalf("expected ErrOpenProvisionalExists, got %v", err)
		}
	})

	t.Run("linked request on another address rejected", func(t *testing.T) {
		uc, m := newEnvironmentUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(comum, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-9").Return(entities.Request{
			ID: "req-9", AddressID: "addr-2", RequestStatus: entities.RequestStatusPendente,
		}, nil)

		in := base
		in.RequestID = "req-9"
		if _, err := uc.RegisterEnvironment(context.Background(), in); !errors.Is(err, ErrRequestAddressMismatch) {
			t.Fatalf("expected ErrRequestAddressMismatch, got %v", err)
		}
	})

	t.Run("technician upgrades the provisional request", func(t *testing.T) {
		uc, m := newEnvironmentUseCaseWithMocks(t)
		open := entities.Request{ID: "req-1", AddressID: "addr-1", EnvID: "addr-1-sala-de-reunião", RequestStatus: entities.RequestStatusVisitaRealizada}
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(comum, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.requests.EXPECT().ListOpenByAddressID(gomock.Any(), "addr-1").Return([]entities.Request{open}, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixEquipment).Return("GTA-202405-00003", nil)
		m.environments.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.claims.EXPECT().ClaimTx("environment#cli-1#addr-1#sala de reuniao").Return(interfaces.TxItem{})

		var envID string
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.EnvironmentID == "" || r.EnvID != "" {
				t.Fatalf("expected upgraded env reference, got %+v", r)
			}
			envID = r.EnvironmentID
			return interfaces.TxItem{}, nil
		})
		m.claims.EXPECT().ReleaseTx(open.OpenClaimScope()).Return(interfaces.TxItem{})
		m.claims.EXPECT().ClaimTx(gomock.Any()).DoAndReturn(func(scope string) interfaces.TxItem {
			if scope != entities.OpenRequestClaimScope("addr-1", envID) {
				t.Fatalf("unexpected migrated scope: %q", scope)
			}
			return interfaces.TxItem{}
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		env, err := uc.RegisterEnvironment(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.EquipmentNumber != "GTA-202405-00003" {
			t.Fatalf("unexpected equipment number: %s", env.EquipmentNumber)
		}
		if env.ID != envID {
			t.Fatalf("request upgraded to a different environment id")
		}
	})

	t.Run("first environment promotes a Novo client", func(t *testing.T) {
		uc, m := newEnvironmentUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", ClientType: entities.ClientTypeNovo}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.requests.EXPECT().ListOpenByAddressID(gomock.Any(), "addr-1").Return(nil, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixEquipment).Return("GTA-202405-00004", nil)
		m.claims.EXPECT().ClaimTx(gomock.Any()).Return(interfaces.TxItem{})
		m.environments.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.clients.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(c entities.Client) (interfaces.TxItem, error) {
			if c.ClientType != entities.ClientTypeComum {
				t.Fatalf("expected promotion to Comum, got %s", c.ClientType)
			}
			if len(c.ModificationHistory) != 1 {
				t.Fatalf("expected one audit entry")
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.RegisterEnvironment(context.Background(), base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
