package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"
	mock_interfaces "gta_clima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type budgetMocks struct {
	budgets   *mock_interfaces.MockIBudgetRepository
	requests  *mock_interfaces.MockIRequestRepository
	claims    *mock_interfaces.MockIUniquenessClaimRepository
	sequences *mock_interfaces.MockISequenceGenerator
	writer    *mock_interfaces.MockITransactionWriter
	gateway   *mock_interfaces.MockIBillingGateway
}

func newBudgetUseCaseWithMocks(t *testing.T, withGateway bool) (*BudgetUseCase, budgetMocks) {
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		budgets:   mock_interfaces.NewMockIBudgetRepository(ctrl),
		requests:  mock_interfaces.NewMockIRequestRepository(ctrl),
		claims:    mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		sequences: mock_interfaces.NewMockISequenceGenerator(ctrl),
		writer:    mock_interfaces.NewMockITransactionWriter(ctrl),
		gateway:   mock_interfaces.NewMockIBillingGateway(ctrl),
	}
	var gateway interfaces.IBillingGateway
	if withGateway {
		gateway = m.gateway
	}
	return NewBudgetUseCase(m.budgets, m.requests, m.claims, m.sequences, m.writer, gateway), m
}

func staff() entities.Actor {
	return entities.Actor{UserID: "user-staff", Level: entities.RoleSecretario}
}

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("request not found", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Actor: staff(), RequestID: "req-1"})
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("pending budget blocks a second one", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusVisitaRealizada}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{ID: "bud-old", BudgetStatus: entities.BudgetStatusPendente}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Actor: staff(), RequestID: "req-1"})
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("rejected budget does not block a redo", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusOrcamentoReprov}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{ID: "bud-old", BudgetStatus: entities.BudgetStatusReprovado}, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixBudget).Return("OR-202405-00002", nil)
		m.budgets.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.requests.EXPECT().SaveTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Actor: staff(), RequestID: "req-1", ServicePrice: 300})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.BudgetNumber != "OR-202405-00002" || b.BudgetStatus != entities.BudgetStatusPendente {
			t.Fatalf("unexpected budget: %+v", b)
		}
	})

	t.Run("success moves request to Orçamento atomically", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		req := entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusVisitaRealizada, Version: 3}
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{}, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixBudget).Return("OR-202405-00013", nil)

		var created entities.Budget
		m.budgets.EXPECT().InsertTx(gomock.Any()).DoAndReturn(func(b entities.Budget) (interfaces.TxItem, error) {
			created = b
			return interfaces.TxItem{}, nil
		})
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.RequestStatus != entities.RequestStatusOrcamento {
				t.Fatalf("expected request status Orçamento, got %s", r.RequestStatus)
			}
			if r.BudgetID == "" {
				t.Fatalf("expected budgetId mirror to be set")
			}
			if !strings.Contains(r.Feedback, "OR-202405-00013") || !strings.Contains(r.Feedback, "enviado para aprovação") {
				t.Fatalf("unexpected feedback: %q", r.Feedback)
			}
			if len(r.ModificationHistory) != 1 {
				t.Fatalf("expected one audit entry, got %d", len(r.ModificationHistory))
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		b, err := uc.CreateBudget(context.Background(), CreateBudgetInput{
			Actor:        staff(),
			RequestID:    "req-1",
			ServicePrice: 400,
			BudgetRebate: 50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != created.ID {
			t.Fatalf("returned budget differs from inserted one")
		}
		if b.BudgetPrice != 350 {
			t.Fatalf("expected derived price 350, got %v", b.BudgetPrice)
		}
	})

	t.Run("commit conflict classified", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusPendente}, nil)
		m.budgets.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Budget{}, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixBudget).Return("OR-202405-00001", nil)
		m.budgets.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.requests.EXPECT().SaveTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrTransactionConflict)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Actor: staff(), RequestID: "req-1"})
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})
}

func TestBudgetUseCase_ResolveBudget(t *testing.T) {
	pending := entities.Budget{
		ID:           "bud-1",
		RequestID:    "req-1",
		BudgetNumber: "OR-202405-00013",
		BudgetStatus: entities.BudgetStatusPendente,
	}

	t.Run("technician cannot resolve", func(t *testing.T) {
		uc, _ := newBudgetUseCaseWithMocks(t, false)
		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    entities.Actor{UserID: "u", Level: entities.RoleTecnico},
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusAprovado,
		})
		if !errors.Is(err, ErrForbiddenResolution) {
			t.Fatalf("expected ErrForbiddenResolution, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		resolved := pending
		resolved.BudgetStatus = entities.BudgetStatusAprovado
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(resolved, nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    staff(),
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusReprovado,
		})
		if !errors.Is(err, ErrBudgetAlreadyResolved) {
			t.Fatalf("expected ErrBudgetAlreadyResolved, got %v", err)
		}
	})

	t.Run("client approval requires invoicing data", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusOrcamento}, nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    entities.Actor{UserID: "u", Level: entities.RoleCliente},
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusAprovado,
		})
		if !errors.Is(err, ErrInvoicingDataMissing) {
			t.Fatalf("expected ErrInvoicingDataMissing, got %v", err)
		}
	})

	t.Run("client approval annotates pelo Cliente and charges", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, true)
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", BudgetID: "bud-1", RequestStatus: entities.RequestStatusOrcamento}, nil)
		m.budgets.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(b entities.Budget) (interfaces.TxItem, error) {
			if b.BudgetStatus != entities.BudgetStatusAprovado {
				t.Fatalf("expected Aprovado, got %s", b.BudgetStatus)
			}
			return interfaces.TxItem{}, nil
		})
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.RequestStatus != entities.RequestStatusOrcamentoAprov {
				t.Fatalf("expected Orçamento Aprovado, got %s", r.RequestStatus)
			}
			if !strings.Contains(r.Feedback, "pelo Cliente") {
				t.Fatalf("unexpected feedback: %q", r.Feedback)
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return("charge-1", "pending", nil, nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:         entities.Actor{UserID: "u", Level: entities.RoleCliente},
			BudgetID:      "bud-1",
			Status:        entities.BudgetStatusAprovado,
			NameClient:    "Empresa X",
			CnpjCpfClient: "12345678000190",
			PhoneClient:   "11999990000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("staff rejection annotates pela GTA", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", BudgetID: "bud-1", RequestStatus: entities.RequestStatusOrcamento}, nil)
		m.budgets.EXPECT().SaveTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.RequestStatus != entities.RequestStatusOrcamentoReprov {
				t.Fatalf("expected Orçamento Reprovado, got %s", r.RequestStatus)
			}
			if !strings.Contains(r.Feedback, "pela GTA") {
				t.Fatalf("unexpected feedback: %q", r.Feedback)
			}
			if r.BudgetID != "bud-1" {
				t.Fatalf("plain rejection must keep the budgetId mirror")
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    entities.Actor{UserID: "u", Level: entities.RoleGestor},
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusReprovado,
			Feedback: "preço acima do esperado",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection with excluir deletes budget and request", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		req := entities.Request{ID: "req-1", AddressID: "addr-1", EnvironmentID: "env-1", BudgetID: "bud-1", RequestStatus: entities.RequestStatusOrcamento}
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
		m.budgets.EXPECT().DeleteTx("bud-1").Return(interfaces.TxItem{})
		m.requests.EXPECT().DeleteTx("req-1").Return(interfaces.TxItem{})
		m.claims.EXPECT().ReleaseTx(req.OpenClaimScope()).Return(interfaces.TxItem{})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    entities.Actor{UserID: "u", Level: entities.RoleCliente},
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusReprovado,
			Action:   entities.ResolutionActionExcluir,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection with refazer clears the mirror", func(t *testing.T) {
		uc, m := newBudgetUseCaseWithMocks(t, false)
		m.budgets.EXPECT().GetByID(gomock.Any(), "bud-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", BudgetID: "bud-1", RequestStatus: entities.RequestStatusOrcamento}, nil)
		m.budgets.EXPECT().SaveTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.BudgetID != "" {
				t.Fatalf("refazer must clear the budgetId mirror")
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ResolveBudget(context.Background(), ResolveBudgetInput{
			Actor:    entities.Actor{UserID: "u", Level: entities.RoleSecretario},
			BudgetID: "bud-1",
			Status:   entities.BudgetStatusReprovado,
			Action:   entities.ResolutionActionRefazer,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
