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

var errInvalidAddressPayload = pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "Invalid address payload", http.StatusBadRequest)

// AddressHandler handles HTTP requests for service addresses.

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

func (h *AddressHandler) CreateAddress(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.CreateAddress(c.Request.Context(), usecase.CreateAddressInput{
		Actor:       actor,
		ClientID:    payload.ClientID,
		OfficerID:   payload.OfficerID,
		AddressType: entities.AddressType(payload.AddressType),
		Street:      payload.Street,
		Number:      payload.Number,
		Complement:  payload.Complement,
		District:    payload.District,
		City:        payload.City,
		State:       payload.State,
		PostalCode:  payload.PostalCode,
		Coordinates: payload.Coordinates,
	})
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAddress(a))
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.UpdateAddress(c.Request.Context(), usecase.UpdateAddressInput{
		Actor:       actor,
		AddressID:   c.Param("address_id"),
		AddressType: entities.AddressType(payload.AddressType),
		Street:      payload.Street,
		Number:      payload.Number,
		Complement:  payload.Complement,
		District:    payload.District,
		City:        payload.City,
		State:       payload.State,
		PostalCode:  payload.PostalCode,
		Coordinates: payload.Coordinates,
	})
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddress(a))
}

// DeleteAddress removes the address and everything hanging off it, or nothing
// at all when open work still references it.
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteAddress(c.Request.Context(), actor, c.Param("address_id")); err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Address deleted"})
}

func (h *AddressHandler) GetAddress(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("address_id"))
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(a))
}

func (h *AddressHandler) ListAddressesByClient(c *gin.Context) {
	addresses, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddresses(addresses))
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrInvalidAddressType),
		errors.Is(err, entities.ErrAddressOwnerMissing), errors.Is(err, entities.ErrAddressOwnerAmbiguous),
		errors.Is(err, entities.ErrAddressCoordinates):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NotFound("ADDRESS_NOT_FOUND", "Address not found")
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NotFound("CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, usecase.ErrOfficerNotFound):
		return pkg.NotFound("OFFICER_NOT_FOUND", "Officer not found")
	case errors.Is(err, usecase.ErrAddressExists):
		return pkg.Conflict("ADDRESS_EXISTS", "Address already registered for this owner")
	case errors.Is(err, usecase.ErrOpenWorkOnAddress):
		return pkg.Conflict("OPEN_WORK_ON_ADDRESS", "Address still carries open requests")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
