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

type clientMocks struct {
	clients      *mock_interfaces.MockIClientRepository
	addresses    *mock_interfaces.MockIAddressRepository
	environments *mock_interfaces.MockIEnvironmentRepository
	requests     *mock_interfaces.MockIRequestRepository
	budgets      *mock_interfaces.MockIBudgetRepository
	orders       *mock_interfaces.MockIOrderRepository
	claims       *mock_interfaces.MockIUniquenessClaimRepository
	sequences    *mock_interfaces.MockISequenceGenerator
	writer       *mock_interfaces.MockITransactionWriter
}

func newClientUseCaseWithMocks(t *testing.T) (*ClientUseCase, clientMocks) {
	ctrl := gomock.NewController(t)
	m := clientMocks{
		clients:      mock_interfaces.NewMockIClientRepository(ctrl),
		addresses:    mock_interfaces.NewMockIAddressRepository(ctrl),
		environments: mock_interfaces.NewMockIEnvironmentRepository(ctrl),
		requests:     mock_interfaces.NewMockIRequestRepository(ctrl),
		budgets:      mock_interfaces.NewMockIBudgetRepository(ctrl),
		orders:       mock_interfaces.NewMockIOrderRepository(ctrl),
		claims:       mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		sequences:    mock_interfaces.NewMockISequenceGenerator(ctrl),
		writer:       mock_interfaces.NewMockITransactionWriter(ctrl),
	}
	uc := NewClientUseCase(m.clients, m.addresses, m.environments, m.requests, m.budgets, m.orders, m.claims, m.sequences, m.writer)
	return uc, m
}

func TestClientUseCase_CreateClient(t *testing.T) {
	t.Run("phone required", func(t *testing.T) {
		uc, _ := newClientUseCaseWithMocks(t)
		_, err := uc.CreateClient(context.Background(), CreateClientInput{Name: "Maria"})
		if !errors.Is(err, ErrClientPhoneMissing) {
			t.Fatalf("expected ErrClientPhoneMissing, got %v", err)
		}
	})

	t.Run("phone already claimed", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), entities.ClientPhoneClaimScope("11999990000")).Return(true, nil)

		_, err := uc.CreateClient(context.Background(), CreateClientInput{Name: "Maria", Phone: "11999990000"})
		if !errors.Is(err, ErrClientPhoneExists) {
			t.Fatalf("expected ErrClientPhoneExists, got %v", err)
		}
	})

	t.Run("success claims phone and register", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.claims.EXPECT().Exists(gomock.Any(), entities.ClientPhoneClaimScope("11999990000")).Return(false, nil)
		m.claims.EXPECT().Exists(gomock.Any(), entities.ClientRegisterClaimScope("12345678901")).Return(false, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixClient).Return("CL-202405-00021", nil)
		m.clients.EXPECT().InsertTx(gomock.Any()).DoAndReturn(func(c entities.Client) (interfaces.TxItem, error) {
			if c.ClientType != entities.ClientTypeNovo {
				t.Fatalf("expected default type Novo, got %s", c.ClientType)
			}
			if c.ClientNumber != "CL-202405-00021" {
				t.Fatalf("unexpected client number: %s", c.ClientNumber)
			}
			return interfaces.TxItem{}, nil
		})
		m.claims.EXPECT().ClaimTx(entities.ClientPhoneClaimScope("11999990000")).Return(interfaces.TxItem{})
		m.claims.EXPECT().ClaimTx(entities.ClientRegisterClaimScope("12345678901")).Return(interfaces.TxItem{})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		c, err := uc.CreateClient(context.Background(), CreateClientInput{
			Actor:    entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario},
			Name:     "Maria",
			Phone:    "11999990000",
			Register: "12345678901",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestClientUseCase_UpdateClient(t *testing.T) {
	existing := entities.Client{ID: "cli-1", Name: "Maria", Phone: "11999990000", ClientType: entities.ClientTypeComum, Version: 2}

	t.Run("phone change migrates the claim", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.claims.EXPECT().Exists(gomock.Any(), entities.ClientPhoneClaimScope("11888880000")).Return(false, nil)
		m.claims.EXPECT().ReleaseTx(entities.ClientPhoneClaimScope("11999990000")).Return(interfaces.TxItem{})
		m.claims.EXPECT().ClaimTx(entities.ClientPhoneClaimScope("11888880000")).Return(interfaces.TxItem{})
		m.clients.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(c entities.Client) (interfaces.TxItem, error) {
			if c.Phone != "11888880000" {
				t.Fatalf("unexpected phone: %s", c.Phone)
			}
			if len(c.ModificationHistory) != 1 {
				t.Fatalf("expected one audit entry")
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		c, err := uc.UpdateClient(context.Background(), UpdateClientInput{
			Actor:    entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario},
			ClientID: "cli-1",
			Phone:    "11888880000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Version != 3 {
			t.Fatalf("expected bumped version, got %d", c.Version)
		}
	})

	t.Run("new phone already claimed", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.claims.EXPECT().Exists(gomock.Any(), entities.ClientPhoneClaimScope("11888880000")).Return(true, nil)

		_, err := uc.UpdateClient(context.Background(), UpdateClientInput{ClientID: "cli-1", Phone: "11888880000"})
		if !errors.Is(err, ErrClientPhoneExists) {
			t.Fatalf("expected ErrClientPhoneExists, got %v", err)
		}
	})
}

func TestClientUseCase_DeleteClient(t *testing.T) {
	existing := entities.Client{ID: "cli-1", Phone: "11999990000", Register: "12345678901"}

	t.Run("open work refuses with zero deletions", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Request{
			{ID: "req-1", RequestStatus: entities.RequestStatusOrcamento},
		}, nil)

		err := uc.DeleteClient(context.Background(), entities.Actor{UserID: "ges-1", Level: entities.RoleGestor}, "cli-1")
		if !errors.Is(err, ErrOpenWorkOnClient) {
			t.Fatalf("expected ErrOpenWorkOnClient, got %v", err)
		}
	})

	t.Run("scheduled order on a finalized request refuses", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Request{
			{ID: "req-1", RequestStatus: entities.RequestStatusFinalizado},
		}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{ID: "bud-1", BudgetStatus: entities.BudgetStatusAprovado}, nil)
		m.orders.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Order{ID: "ord-1", OrderStatus: entities.OrderStatusProgramado}, nil)

		err := uc.DeleteClient(context.Background(), entities.Actor{UserID: "ges-1", Level: entities.RoleGestor}, "cli-1")
		if !errors.Is(err, ErrOpenWorkOnClient) {
			t.Fatalf("expected ErrOpenWorkOnClient, got %v", err)
		}
	})

	t.Run("pending budget on a finalized request refuses", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Request{
			{ID: "req-1", RequestStatus: entities.RequestStatusFinalizado},
		}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{ID: "bud-1", BudgetStatus: entities.BudgetStatusPendente}, nil)

		err := uc.DeleteClient(context.Background(), entities.Actor{UserID: "ges-1", Level: entities.RoleGestor}, "cli-1")
		if !errors.Is(err, ErrOpenWorkOnClient) {
			t.Fatalf("expected ErrOpenWorkOnClient, got %v", err)
		}
	})

	t.Run("cascade deletes everything in one commit", func(t *testing.T) {
		uc, m := newClientUseCaseWithMocks(t)
		address := entities.Address{ID: "addr-1", ClientID: "cli-1", AddressType: entities.AddressTypeResidencial, Street: "Rua A", Number: 10, District: "Centro", City: "São Paulo", State: "SP", PostalCode: "01000-000"}
		env := entities.Environment{ID: "env-1", ClientID: "cli-1", AddressID: "addr-1", EnvironmentName: "Sala"}
		closed := entities.Request{ID: "req-1", ClientID: "cli-1", RequestStatus: entities.RequestStatusFinalizado}

		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(existing, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Request{closed}, nil)
		m.addresses.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Address{address}, nil)
		m.environments.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Environment{env}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{ID: "bud-1", BudgetStatus: entities.BudgetStatusReprovado}, nil)
		m.orders.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Order{ID: "ord-1", OrderStatus: entities.OrderStatusRealizado}, nil)

		m.claims.EXPECT().ReleaseTx(address.ClaimScope()).Return(interfaces.TxItem{})
		m.addresses.EXPECT().DeleteTx("addr-1").Return(interfaces.TxItem{})
		m.claims.EXPECT().ReleaseTx(env.ClaimScope()).Return(interfaces.TxItem{})
		m.environments.EXPECT().DeleteTx("env-1").Return(interfaces.TxItem{})
		m.budgets.EXPECT().DeleteTx("bud-1").Return(interfaces.TxItem{})
		m.orders.EXPECT().DeleteTx("ord-1").Return(interfaces.TxItem{})
		m.requests.EXPECT().DeleteTx("req-1").Return(interfaces.TxItem{})
		m.claims.EXPECT().ReleaseTx(entities.ClientPhoneClaimScope("11999990000")).Return(interfaces.TxItem{})
		m.claims.EXPECT().ReleaseTx(entities.ClientRegisterClaimScope("12345678901")).Return(interfaces.TxItem{})
		m.clients.EXPECT().DeleteTx("cli-1").Return(interfaces.TxItem{})

		m.writer.EXPECT().Execute(gomock.Any(), gomock.Len(10)).Return(nil)

		err := uc.DeleteClient(context.Background(), entities.Actor{UserID: "ges-1", Level: entities.RoleGestor}, "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
