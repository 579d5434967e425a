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

func TestHistoryHandler_RegisterHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHistoryUseCase(ctrl)
		h := NewHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.RegisterHistory)

		body := `{"environment_id":"env-1","maintenance":[{"service":"limpeza"}],"date":"2024/05/20"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closing an already finalized request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHistoryUseCase(ctrl)
		h := NewHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.RegisterHistory)

		uc.EXPECT().RegisterHistory(gomock.Any(), gomock.Any()).Return(entities.HistoryMaintenance{}, usecase.ErrRequestAlreadyClosed)

		body := `{"environment_id":"env-1","request_id":"req-1","maintenance":[{"service":"limpeza"}]}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHistoryUseCase(ctrl)
		h := NewHistoryHandler(uc)

		r := gin.New()
		r.POST("/v1/history", h.RegisterHistory)

		uc.EXPECT().RegisterHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.RegisterHistoryInput) (entities.HistoryMaintenance, error) {
			if in.EnvironmentID != "env-1" || len(in.Maintenance) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.HistoryMaintenance{ID: "his-1", EnvironmentID: "env-1", Maintenance: in.Maintenance}, nil
		})

		body := `{"environment_id":"env-1","maintenance":[{"service":"limpeza"},{"service":"troca de filtro","obs":"filtro original"}]}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/history", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapHistoryError(t *testing.T) {
	if got := mapHistoryError(usecase.ErrMaintenanceEmpty); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapHistoryError(usecase.ErrEnvironmentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapHistoryError(usecase.ErrOrderAlreadyDone); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapHistoryError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
