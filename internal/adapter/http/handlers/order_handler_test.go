package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gta_clima/internal/adapter/http/handlers/mocks"
	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing services rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		body := `{"request_id":"req-1","officer_id":"off-1","date":"20-05-2024","time":"09:00"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrBudgetNotApproved)

		body := `{"request_id":"req-1","officer_id":"off-1","services":["svc-1"],"date":"20-05-2024","time":"09:00"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
			if in.RequestID != "req-1" || len(in.ServiceIDs) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Order{ID: "ord-1", OrderNumber: "OS-202405-00007", OrderStatus: entities.OrderStatusProgramado}, nil
		})

		body := `{"request_id":"req-1","officer_id":"off-1","services":["svc-1"],"date":"20-05-2024","time":"09:00"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("direct Realizado rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderStatusDirect)

		body := `{"order_status":"Realizado"}`
		req := authed(httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reschedule success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.UpdateOrderInput) (entities.Order, error) {
			if in.OrderID != "ord-1" || in.Date != "22-05-2024" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Order{ID: "ord-1", Date: in.Date, Time: in.Time}, nil
		})

		body := `{"date":"22-05-2024","time":"10:30"}`
		req := authed(httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrOrderServicesMissing); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrOrderAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(usecase.ErrOfficerNotTechnician); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
