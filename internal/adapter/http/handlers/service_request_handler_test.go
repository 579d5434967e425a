package handlers

import (
	"bytes"
	"encoding/json"
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

func authed(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, "user-1")
	req.Header.Set(HeaderUserLevel, "Cliente")
	return req
}

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := authed(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open request conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().RegisterRequest(gomock.Any(), gomock.Any()).Return(entities.Request{}, usecase.ErrOpenRequestExists)

		body := `{"client_id":"cli-1","address_id":"addr-1","environment_name":"Sala","request_type":"Manutenção","maintenance_problem":"vazamento"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().RegisterRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.RegisterRequestInput) (entities.Request, error) {
			if in.Actor.UserID != "user-1" || in.Actor.Level != entities.RoleCliente {
				t.Fatalf("unexpected actor: %+v", in.Actor)
			}
			if in.RequestType != entities.RequestTypeManutencao {
				t.Fatalf("unexpected type: %s", in.RequestType)
			}
			return entities.Request{ID: "req-1", RequestNumber: "REQ-202405-00001", RequestStatus: entities.RequestStatusPendente}, nil
		})

		body := `{"client_id":"cli-1","address_id":"addr-1","environment_name":"Sala","request_type":"Manutenção","maintenance_problem":"vazamento"}`
		req := authed(httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["request_number"] != "REQ-202405-00001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_ScheduleVisit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/visit", h.ScheduleVisit)

		uc.EXPECT().ScheduleVisit(gomock.Any(), gomock.Any()).Return(entities.Request{}, usecase.ErrRequestNotFound)

		body := `{"officer_id":"off-1","date_visit":"10-05-2024","time_visit":"14:00"}`
		req := authed(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/visit", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/visit", h.ScheduleVisit)

		uc.EXPECT().ScheduleVisit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ScheduleVisitInput) (entities.Request, error) {
			if in.RequestID != "req-1" || in.OfficerID != "off-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Request{ID: "req-1", RequestStatus: entities.RequestStatusVisitaProgramada}, nil
		})

		body := `{"officer_id":"off-1","date_visit":"10-05-2024","time_visit":"14:00"}`
		req := authed(httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/visit", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapRequestError(t *testing.T) {
	if got := mapRequestError(usecase.ErrInvalidRequestType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRequestError(entities.ErrRequestServiceKindAmbiguous); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRequestError(usecase.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRequestError(usecase.ErrOpenRequestExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRequestError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
