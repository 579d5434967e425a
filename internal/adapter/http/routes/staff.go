package routes

import (
	"gta_clima/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOfficers = "/officers"
	PathServices = "/services"
)

func addStaffRoutes(
	rg *gin.RouterGroup,
	officerHandler *handlers.OfficerHandler,
	serviceHandler *handlers.ServiceCatalogHandler,
) {
	officers := rg.Group(PathOfficers)
	{
		officers.POST("", officerHandler.RegisterOfficer)
		officers.GET("", officerHandler.ListOfficers)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.RegisterService)
		services.GET("", serviceHandler.ListServices)
	}
}
