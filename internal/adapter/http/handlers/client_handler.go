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

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

// ClientHandler handles HTTP requests for customer records.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateClient(c.Request.Context(), usecase.CreateClientInput{
		Actor:            actor,
		UserID:           payload.UserID,
		Name:             payload.Name,
		Phone:            payload.Phone,
		AlternativePhone: payload.AlternativePhone,
		Email:            payload.Email,
		Register:         payload.Register,
		ClientType:       entities.ClientType(payload.ClientType),
	})
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(created))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateClient(c.Request.Context(), usecase.UpdateClientInput{
		Actor:            actor,
		ClientID:         c.Param("client_id"),
		Name:             payload.Name,
		Phone:            payload.Phone,
		AlternativePhone: payload.AlternativePhone,
		Email:            payload.Email,
		Register:         payload.Register,
		ClientType:       entities.ClientType(payload.ClientType),
	})
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(updated))
}

// DeleteClient removes the client and cascades all owned records, or refuses
// without touching anything when open work exists.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteClient(c.Request.Context(), actor, c.Param("client_id")); err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client deleted"})
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(found))
}

// GetClientByUser resolves a client through the authentication user id.
func (h *ClientHandler) GetClientByUser(c *gin.Context) {
	found, err := h.usecase.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(found))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrInvalidClientType),
		errors.Is(err, usecase.ErrClientPhoneMissing):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NotFound("CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, usecase.ErrClientPhoneExists):
		return pkg.Conflict("CLIENT_PHONE_EXISTS", "Client phone already registered")
	case errors.Is(err, usecase.ErrClientRegisterExists):
		return pkg.Conflict("CLIENT_REGISTER_EXISTS", "Client tax id already registered")
	case errors.Is(err, usecase.ErrOpenWorkOnClient):
		return pkg.Conflict("OPEN_WORK_ON_CLIENT", "Client still carries open requests")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
