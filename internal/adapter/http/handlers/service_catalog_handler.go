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

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceCatalogHandler handles HTTP requests for the service catalog.

type ServiceCatalogHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceCatalogHandler(uc usecase.IServiceUseCase) *ServiceCatalogHandler {
	return &ServiceCatalogHandler{usecase: uc}
}

func (h *ServiceCatalogHandler) RegisterService(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RegisterServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RegisterService(c.Request.Context(), usecase.RegisterServiceInput{
		Actor:              actor,
		ServiceType:        entities.ServiceType(payload.ServiceType),
		ServiceName:        payload.ServiceName,
		ServiceDescription: payload.ServiceDescription,
		ServicePrice:       payload.ServicePrice,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *ServiceCatalogHandler) ListServices(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	services, err := h.usecase.ListServices(c.Request.Context(), actor)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrServiceNameMissing),
		errors.Is(err, usecase.ErrServicePriceNegative):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrForbiddenRegistration):
		return pkg.Forbidden("FORBIDDEN", "Actor role cannot manage staff records")
	case errors.Is(err, usecase.ErrServiceExists):
		return pkg.Conflict("SERVICE_EXISTS", "Service already registered for this type and name")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
