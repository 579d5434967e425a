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

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)

// ServiceRequestHandler handles HTTP requests for the service request side of
// the lifecycle: opening a request and scheduling the technical visit.

type ServiceRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// CreateRequest godoc
//
//	@Summary	Open a new service request
//	@Tags		requests
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateServiceRequest	true	"Request payload"
//	@Success	201		{object}	response.ServiceRequestResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/v1/requests [post]
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.RegisterRequest(c.Request.Context(), usecase.RegisterRequestInput{
		Actor:                 actor,
		ClientID:              payload.ClientID,
		AddressID:             payload.AddressID,
		EnvironmentID:         payload.EnvironmentID,
		EnvironmentName:       payload.EnvironmentName,
		RequestType:           entities.RequestType(payload.RequestType),
		ServiceIDs:            payload.Services,
		MaintenanceProblem:    payload.MaintenanceProblem,
		InstallationEquipment: payload.InstallationEquipment,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(req))
}

// ScheduleVisit godoc
//
//	@Summary	Schedule the technical visit for a request
//	@Tags		requests
//	@Accept		json
//	@Produce	json
//	@Param		request_id	path		string							true	"Request id"
//	@Param		payload		body		request.ScheduleVisitRequest	true	"Visit payload"
//	@Success	200			{object}	response.ServiceRequestResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/v1/requests/{request_id}/visit [patch]
func (h *ServiceRequestHandler) ScheduleVisit(c *gin.Context) {
	actor, appErr := actorFrom(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.ScheduleVisit(c.Request.Context(), usecase.ScheduleVisitInput{
		Actor:     actor,
		RequestID: c.Param("request_id"),
		OfficerID: payload.OfficerID,
		DateVisit: payload.DateVisit,
		TimeVisit: payload.TimeVisit,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(req))
}

// GetRequest returns a single request by id.
func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(req))
}

// ListRequestsByClient returns every request a client has opened.
func (h *ServiceRequestHandler) ListRequestsByClient(c *gin.Context) {
	requests, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(requests))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrInvalidRequestType),
		errors.Is(err, entities.ErrRequestServiceKindMissing), errors.Is(err, entities.ErrRequestServiceKindAmbiguous):
		return pkg.Validation("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NotFound("CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NotFound("ADDRESS_NOT_FOUND", "Address not found")
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NotFound("ENVIRONMENT_NOT_FOUND", "Environment not found")
	case errors.Is(err, usecase.ErrOfficerNotFound):
		return pkg.NotFound("OFFICER_NOT_FOUND", "Officer not found")
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NotFound("REQUEST_NOT_FOUND", "Request not found")
	case errors.Is(err, usecase.ErrOpenRequestExists):
		return pkg.Conflict("OPEN_REQUEST_EXISTS", "An open request already exists for this environment")
	case errors.Is(err, usecase.ErrRequestAlreadyClosed):
		return pkg.Conflict("REQUEST_ALREADY_CLOSED", "Request is already finalized")
	default:
		return pkg.Internal("INTERNAL_ERROR", "An internal error occurred", err)
	}
}
