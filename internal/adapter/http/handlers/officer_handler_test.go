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

func TestOfficerHandler_RegisterOfficer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfficerUseCase(ctrl)
		h := NewOfficerHandler(uc)

		r := gin.New()
		r.POST("/v1/officers", h.RegisterOfficer)

		uc.EXPECT().RegisterOfficer(gomock.Any(), gomock.Any()).Return(entities.Officer{}, usecase.ErrForbiddenRegistration)

		body := `{"user_id":"user-9","register":"12345678900","phone":"11988887777","officer_type":"Técnico","officer_level":"Pleno"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/officers", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfficerUseCase(ctrl)
		h := NewOfficerHandler(uc)

		r := gin.New()
		r.POST("/v1/officers", h.RegisterOfficer)

		uc.EXPECT().RegisterOfficer(gomock.Any(), gomock.Any()).Return(entities.Officer{
			ID:            "off-1",
			OfficerNumber: "TEC-202405-00002",
			OfficerType:   entities.OfficerTypeTecnico,
			OfficerLevel:  entities.OfficerLevelPleno,
		}, nil)

		body := `{"user_id":"user-9","register":"12345678900","phone":"11988887777","officer_type":"Técnico","officer_level":"Pleno"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/officers", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
