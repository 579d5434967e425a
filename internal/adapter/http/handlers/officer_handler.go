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

var errInvalidOfficerPayload = pkg.NewDomainErrorSimple("INVALID_OFFICER_INPUT", "Invalid officer payload", http.StatusBadRequest)

// OfficerHandler handles HTTP requests for the staff roster.

type OfficerHandler struct {
	usecase usecase.IOfficerUseCase
}

func NewOfficerHandler(uc usecase.IOfficerUseCase) *OfficerHandler {
	return &OfficerHandler{usecase: uc}
}

func (h *OfficerHandler) RegisterOfficer(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RegisterOfficerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfficerPayload.HTTPStatus, errInvalidOfficerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RegisterOfficer(c.Request.Context(), usecase.RegisterOfficerInput{
		Actor:        actor,
		UserID:       payload.UserID,
		Register:     payload.Register,
		Phone:        payload.Phone,
		OfficerType:  entities.OfficerType(payload.OfficerType),
		OfficerLevel: entities.OfficerLevel(payload.OfficerLevel),
	})
	if err != nil {
		appErr := mapOfficerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOfficer(created))
}

func (h *OfficerHandler) ListOfficers(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	officers, err := h.usecase.ListOfficers(c.Request.Context(), actor)
	if err != nil {
		appErr := mapOfficerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOfficers(officers))
}

func mapOfficerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfficerType), errors.Is(err, usecase.ErrInvalidOfficerLevel),
		errors.Is(err, usecase.ErrOfficerDataMissing):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrForbiddenRegistration):
		return pkg.Forbidden("FORBIDDEN", "Actor role cannot manage staff records")
	case errors.Is(err, usecase.ErrOfficerPhoneExists):
		return pkg.Conflict("OFFICER_PHONE_EXISTS", "Officer phone already registered")
	case errors.Is(err, usecase.ErrOfficerRegisterExists):
		return pkg.Conflict("OFFICER_REGISTER_EXISTS", "Officer tax id already registered")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
