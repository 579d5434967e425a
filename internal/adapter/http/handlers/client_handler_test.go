package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"gta_clima/internal/adapter/http/handlers/mocks"
	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("phone conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientPhoneExists)

		body := `{"name":"Maria","phone":"11999990000"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(entities.Client{ID: "cli-1", Name: "Maria", Phone: "11999990000", ClientType: entities.ClientTypeNovo, ClientNumber: "CL-202405-00021"}, nil)

		body := `{"name":"Maria","phone":"11999990000"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("open work refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:client_id", h.DeleteClient)

		uc.EXPECT().DeleteClient(gomock.Any(), gomock.Any(), "cli-1").Return(usecase.ErrOpenWorkOnClient)

		req := authed(httptest.NewRequest(http.MethodDelete, "/v1/clients/cli-1", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:client_id", h.DeleteClient)

		uc.EXPECT().DeleteClient(gomock.Any(), gomock.Any(), "cli-1").Return(nil)

		req := authed(httptest.NewRequest(http.MethodDelete, "/v1/clients/cli-1", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
