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

type requestMocks struct {
	requests     *mock_interfaces.MockIRequestRepository
	environments *mock_interfaces.MockIEnvironmentRepository
	addresses    *mock_interfaces.MockIAddressRepository
	clients      *mock_interfaces.MockIClientRepository
	officers     *mock_interfaces.MockIOfficerRepository
	claims       *mock_interfaces.MockIUniquenessClaimRepository
	sequences    *mock_interfaces.MockISequenceGenerator
	writer       *mock_interfaces.MockITransactionWriter
}

func newRequestUseCaseWithMocks(t *testing.T) (*RequestUseCase, requestMocks) {
	ctrl := gomock.NewController(t)
	m := requestMocks{
		requests:     mock_interfaces.NewMockIRequestRepository(ctrl),
		environments: mock_interfaces.NewMockIEnvironmentRepository(ctrl),
		addresses:    mock_interfaces.NewMockIAddressRepository(ctrl),
		clients:      mock_interfaces.NewMockIClientRepository(ctrl),
		officers:     mock_interfaces.NewMockIOfficerRepository(ctrl),
		claims:       mock_interfaces.NewMockIUniquenessClaimRepository(ctrl),
		sequences:    mock_interfaces.NewMockISequenceGenerator(ctrl),
		writer:       mock_interfaces.NewMockITransactionWriter(ctrl),
	}
	uc := NewRequestUseCase(m.requests, m.environments, m.addresses, m.clients, m.officers, m.claims, m.sequences, m.writer)
	return uc, m
}

func TestRequestUseCase_RegisterRequest(t *testing.T) {
	base := RegisterRequestInput{
		Actor:              entities.Actor{UserID: "user-1", Level: entities.RoleCliente},
		ClientID:           "cli-1",
		AddressID:          "addr-1",
		EnvironmentName:    "Sala de Reunião",
		RequestType:        entities.RequestTypeManutencao,
		MaintenanceProblem: "vazamento",
	}

	t.Run("invalid request type", func(t *testing.T) {
		uc, _ := newRequestUseCaseWithMocks(t)
		in := base
		in.RequestType = "Conserto"
		if _, err := uc.RegisterRequest(context.Background(), in); !errors.Is(err, ErrInvalidRequestType) {
			t.Fatalf("expected ErrInvalidRequestType, got %v", err)
		}
	})

	t.Run("mixed service kinds rejected", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)

		in := base
		in.InstallationEquipment = "split 12000"
		if _, err := uc.RegisterRequest(context.Background(), in); !errors.Is(err, entities.ErrRequestServiceKindAmbiguous) {
			t.Fatalf("expected ErrRequestServiceKindAmbiguous, got %v", err)
		}
	})

	t.Run("open request on environment rejected", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), "request-open#addr-1#addr-1-sala-de-reunião").Return(true, nil)

		if _, err := uc.RegisterRequest(context.Background(), base); !errors.Is(err, ErrOpenRequestExists) {
			t.Fatalf("expected ErrOpenRequestExists, got %v", err)
		}
	})

	t.Run("success claims the environment slot", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixRequest).Return("REQ-202405-00001", nil)
		m.claims.EXPECT().ClaimTx("request-open#addr-1#addr-1-sala-de-reunião").Return(interfaces.TxItem{})
		m.requests.EXPECT().InsertTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.RequestStatus != entities.RequestStatusPendente {
				t.Fatalf("expected Pendente, got %s", r.RequestStatus)
			}
			if r.EnvID != "addr-1-sala-de-reunião" || r.EnvironmentID != "" {
				t.Fatalf("expected provisional env key, got %+v", r)
			}
			if r.RequestNumber != "REQ-202405-00001" {
				t.Fatalf("unexpected request number: %s", r.RequestNumber)
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		req, err := uc.RegisterRequest(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ID == "" || req.CreatedBy.UserID != "user-1" {
			t.Fatalf("unexpected request: %+v", req)
		}
	})

	t.Run("registered environment must exist", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.environments.EXPECT().GetByID(gomock.Any(), "env-1").Return(entities.Environment{}, nil)

		in := base
		in.EnvironmentName = ""
		in.EnvironmentID = "env-1"
		if _, err := uc.RegisterRequest(context.Background(), in); !errors.Is(err, ErrEnvironmentNotFound) {
			t.Fatalf("expected ErrEnvironmentNotFound, got %v", err)
		}
	})

	t.Run("commit race surfaces as conflict", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.addresses.EXPECT().GetByID(gomock.Any(), "addr-1").Return(entities.Address{ID: "addr-1"}, nil)
		m.claims.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.sequences.EXPECT().Allocate(gomock.Any(), interfaces.SeqPrefixRequest).Return("REQ-202405-00002", nil)
		m.claims.EXPECT().ClaimTx(gomock.Any()).Return(interfaces.TxItem{})
		m.requests.EXPECT().InsertTx(gomock.Any()).Return(interfaces.TxItem{}, nil)
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrTransactionConflict)

		if _, err := uc.RegisterRequest(context.Background(), base); !errors.Is(err, ErrOpenRequestExists) {
			t.Fatalf("expected ErrOpenRequestExists, got %v", err)
		}
	})
}

func TestRequestUseCase_ScheduleVisit(t *testing.T) {
	t.Run("request not found", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{}, nil)

		_, err := uc.ScheduleVisit(context.Background(), ScheduleVisitInput{RequestID: "req-1", OfficerID: "off-1"})
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("finalized request rejected", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusFinalizado}, nil)

		_, err := uc.ScheduleVisit(context.Background(), ScheduleVisitInput{RequestID: "req-1", OfficerID: "off-1"})
		if !errors.Is(err, ErrRequestAlreadyClosed) {
			t.Fatalf("expected ErrRequestAlreadyClosed, got %v", err)
		}
	})

	t.Run("success schedules and audits", func(t *testing.T) {
		uc, m := newRequestUseCaseWithMocks(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusPendente, Version: 1}, nil)
		m.officers.EXPECT().GetByID(gomock.Any(), "off-1").Return(entities.Officer{ID: "off-1", OfficerType: entities.OfficerTypeTecnico}, nil)
		m.requests.EXPECT().SaveTx(gomock.Any()).DoAndReturn(func(r entities.Request) (interfaces.TxItem, error) {
			if r.RequestStatus != entities.RequestStatusVisitaProgramada {
				t.Fatalf("expected Visita Técnica Programada, got %s", r.RequestStatus)
			}
			if r.Feedback != entities.VisitFeedback("10-05-2024", "14:00") {
				t.Fatalf("unexpected feedback: %q", r.Feedback)
			}
			if len(r.ModificationHistory) != 1 {
				t.Fatalf("expected one audit entry")
			}
			return interfaces.TxItem{}, nil
		})
		m.writer.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

		req, err := uc.ScheduleVisit(context.Background(), ScheduleVisitInput{
			Actor:     entities.Actor{UserID: "sec-1", Level: entities.RoleSecretario},
			RequestID: "req-1",
			OfficerID: "off-1",
			DateVisit: "10-05-2024",
			TimeVisit: "14:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Version != 2 {
			t.Fatalf("expected bumped version, got %d", req.Version)
		}
	})
}
