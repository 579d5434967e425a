package handlers

import (
	"errors"
	"net/http"

	request "gta_clima/internal/adapter/http/dto/request"
	response "gta_clima/internal/adapter/http/dto/response"
	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase"
	"gta_clima/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for budgets: issuing one against a
// request and resolving it as approved or rejected.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.CreateBudget(c.Request.Context(), usecase.CreateBudgetInput{
		Actor:                  actor,
		RequestID:              payload.RequestID,
		ServiceIDs:             payload.Services,
		ServiceType:            payload.ServiceType,
		ServicePrice:           payload.ServicePrice,
		Equipment:              payload.Equipment,
		EquipmentPrice:         payload.EquipmentPrice,
		BudgetRebate:           payload.BudgetRebate,
		BudgetPrice:            payload.BudgetPrice,
		NameClient:             payload.NameClient,
		CnpjCpfClient:          payload.CnpjCpfClient,
		PhoneClient:            payload.PhoneClient,
		PhoneAlternativeClient: payload.PhoneAlternativeClient,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// ResolveBudget approves or rejects a pending budget. The rejection action
// ("excluir"/"refazer") decides whether request and budget survive.
func (h *BudgetHandler) ResolveBudget(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ResolveBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	action, err := entities.ParseResolutionAction(payload.Acao)
	if err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.ResolveBudget(c.Request.Context(), usecase.ResolveBudgetInput{
		Actor:                  actor,
		BudgetID:               c.Param("budget_id"),
		Status:                 entities.BudgetStatus(payload.Status),
		Action:                 action,
		Feedback:               payload.Feedback,
		NameClient:             payload.NameClient,
		CnpjCpfClient:          payload.CnpjCpfClient,
		PhoneClient:            payload.PhoneClient,
		PhoneAlternativeClient: payload.PhoneAlternativeClient,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// GetBudgetByRequest resolves the budget through its owning request
// reference, never the request's mirror field.
func (h *BudgetHandler) GetBudgetByRequest(c *gin.Context) {
	b, err := h.usecase.GetByRequestID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrInvalidBudgetStatus),
		errors.Is(err, entities.ErrUnknownResolutionAction), errors.Is(err, entities.ErrUnknownRole):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrInvoicingDataMissing):
		return pkg.Validation("INVOICING_DATA_MISSING", "Budget approval requires name, tax id and phone")
	case errors.Is(err, usecase.ErrForbiddenResolution):
		return pkg.Forbidden("FORBIDDEN_RESOLUTION", "This role cannot resolve a budget")
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NotFound("BUDGET_NOT_FOUND", "Budget not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NotFound("REQUEST_NOT_FOUND", "Request not found")
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.Conflict("BUDGET_ALREADY_EXISTS", "Request already carries an unresolved budget")
	case errors.Is(err, usecase.ErrBudgetAlreadyResolved):
		return pkg.Conflict("BUDGET_ALREADY_RESOLVED", "Budget is already resolved")
	case errors.Is(err, usecase.ErrRequestAlreadyClosed):
		return pkg.Conflict("REQUEST_ALREADY_CLOSED", "Request is already finalized")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
