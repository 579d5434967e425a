package handlers

import (
	"errors"
	"net/http"

	request "gta_clima/internal/adapter/http/dto/request"
	response "gta_clima/internal/adapter/http/dto/response"
	"gta_clima/internal/usecase"
	"gta_clima/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEnvironmentPayload = pkg.NewDomainErrorSimple("INVALID_ENVIRONMENT_INPUT", "Invalid environment payload", http.StatusBadRequest)

// EnvironmentHandler handles HTTP requests for equipment environments.

type EnvironmentHandler struct {
	usecase usecase.IEnvironmentUseCase
}

func NewEnvironmentHandler(uc usecase.IEnvironmentUseCase) *EnvironmentHandler {
	return &EnvironmentHandler{usecase: uc}
}

func (h *EnvironmentHandler) RegisterEnvironment(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateEnvironmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnvironmentPayload.HTTPStatus, errInvalidEnvironmentPayload.ToHTTPError())
		return
	}

	env, err := h.usecase.RegisterEnvironment(c.Request.Context(), usecase.RegisterEnvironmentInput{
		Actor:           actor,
		ClientID:        payload.ClientID,
		AddressID:       payload.AddressID,
		RequestID:       payload.RequestID,
		EnvironmentName: payload.EnvironmentName,
		EnvironmentSize: payload.EnvironmentSize,
		EquipmentType:   payload.EquipmentType,
		EquipmentBrand:  payload.EquipmentBrand,
		EquipmentModel:  payload.EquipmentModel,
		CapacityBTU:     payload.CapacityBTU,
		Cicle:           payload.Cicle,
		Volt:            payload.Volt,
		SerialModel:     payload.SerialModel,
	})
	if err != nil {
		appErr := mapEnvironmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEnvironment(env))
}

func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	env, err := h.usecase.GetByID(c.Request.Context(), c.Param("environment_id"))
	if err != nil {
		appErr := mapEnvironmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnvironment(env))
}

func (h *EnvironmentHandler) ListEnvironmentsByAddress(c *gin.Context) {
	environments, err := h.usecase.ListByAddressID(c.Request.Context(), c.Param("address_id"))
	if err != nil {
		appErr := mapEnvironmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.EnvironmentResponse, 0, len(environments))
	for _, env := range environments {
		out = append(out, response.FromEnvironment(env))
	}
	c.JSON(http.StatusOK, out)
}

func mapEnvironmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NotFound("CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NotFound("ADDRESS_NOT_FOUND", "Address not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NotFound("REQUEST_NOT_FOUND", "Request not found")
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NotFound("ENVIRONMENT_NOT_FOUND", "Environment not found")
	case errors.Is(err, usecase.ErrEnvironmentExists):
		return pkg.Conflict("ENVIRONMENT_EXISTS", "Environment already registered for this client and address")
	case errors.Is(err, usecase.ErrRequestAddressMismatch):
		return pkg.Validation("REQUEST_ADDRESS_MISMATCH", "Request belongs to a different address")
	case errors.Is(err, usecase.ErrOpenProvisionalExists):
		return pkg.Conflict("OPEN_PROVISIONAL_EXISTS", "An open request already references this environment name")
	case errors.Is(err, usecase.ErrRequestAlreadyClosed):
		return pkg.Conflict("REQUEST_ALREADY_CLOSED", "Request is already finalized")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
