package handlers

import (
	"errors"
	"net/http"
	"time"

	request "gta_clima/internal/adapter/http/dto/request"
	response "gta_clima/internal/adapter/http/dto/response"
	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase"
	"gta_clima/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidHistoryPayload = pkg.NewDomainErrorSimple("INVALID_HISTORY_INPUT", "Invalid history payload", http.StatusBadRequest)

// HistoryHandler handles HTTP requests for maintenance history records.

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// RegisterHistory records executed maintenance; when the payload carries a
// request or order id, those are finalized in the same commit.
func (h *HistoryHandler) RegisterHistory(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RegisterHistoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
		return
	}

	var date time.Time
	if payload.Date != "" {
		parsed, err := time.Parse("02-01-2006", payload.Date)
		if err != nil {
			c.JSON(errInvalidHistoryPayload.HTTPStatus, errInvalidHistoryPayload.ToHTTPError())
			return
		}
		date = parsed
	}

	items := make([]entities.MaintenanceItem, 0, len(payload.Maintenance))
	for _, it := range payload.Maintenance {
		items = append(items, entities.MaintenanceItem{Service: it.Service, Obs: it.Obs})
	}

	record, err := h.usecase.RegisterHistory(c.Request.Context(), usecase.RegisterHistoryInput{
		Actor:         actor,
		EnvironmentID: payload.EnvironmentID,
		RequestID:     payload.RequestID,
		OrderID:       payload.OrderID,
		Maintenance:   items,
		Date:          date,
	})
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromHistory(record))
}

// ListHistoryByEnvironment returns the maintenance trail of an environment.
func (h *HistoryHandler) ListHistoryByEnvironment(c *gin.Context) {
	histories, err := h.usecase.ListByEnvironmentID(c.Request.Context(), c.Param("environment_id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistories(histories))
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrMaintenanceEmpty):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NotFound("ENVIRONMENT_NOT_FOUND", "Environment not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NotFound("REQUEST_NOT_FOUND", "Request not found")
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NotFound("ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, usecase.ErrRequestAlreadyClosed):
		return pkg.Conflict("REQUEST_ALREADY_CLOSED", "Request is already finalized")
	case errors.Is(err, usecase.ErrOrderAlreadyDone):
		return pkg.Conflict("ORDER_ALREADY_DONE", "Order is already realized")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
