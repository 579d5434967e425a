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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for service orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		Actor:      actor,
		RequestID:  payload.RequestID,
		OfficerID:  payload.OfficerID,
		ServiceIDs: payload.Services,
		Date:       payload.Date,
		Time:       payload.Time,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.UpdateOrder(c.Request.Context(), usecase.UpdateOrderInput{
		Actor:       actor,
		OrderID:     c.Param("order_id"),
		OrderStatus: entities.OrderStatus(payload.OrderStatus),
		Date:        payload.Date,
		Time:        payload.Time,
		Feedback:    payload.Feedback,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// ListOrdersByOfficer returns the orders assigned to a technician.
func (h *OrderHandler) ListOrdersByOfficer(c *gin.Context) {
	orders, err := h.usecase.ListByOfficerID(c.Request.Context(), c.Param("officer_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrOrderServicesMissing):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrOrderStatusDirect):
		return pkg.Validation("ORDER_STATUS_DIRECT", "Order completion only happens through maintenance history")
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NotFound("ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NotFound("REQUEST_NOT_FOUND", "Request not found")
	case errors.Is(err, usecase.ErrOfficerNotFound):
		return pkg.NotFound("OFFICER_NOT_FOUND", "Officer not found")
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.Conflict("ORDER_ALREADY_EXISTS", "Request already carries an order")
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.Conflict("BUDGET_NOT_APPROVED", "Request carries no approved budget")
	case errors.Is(err, usecase.ErrOrderAlreadyDone):
		return pkg.Conflict("ORDER_ALREADY_DONE", "Order is already realized")
	case errors.Is(err, usecase.ErrRequestAlreadyClosed):
		return pkg.Conflict("REQUEST_ALREADY_CLOSED", "Request is already finalized")
	case errors.Is(err, usecase.ErrOfficerNotTechnician):
		return pkg.Validation("OFFICER_NOT_TECHNICIAN", "Officer is not a technician")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
