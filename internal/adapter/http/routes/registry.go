package routes

import (
	"gta_clima/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEnvironments = "/environments"
	PathAddresses    = "/addresses"
	PathClients      = "/clients"
)

func addRegistryRoutes(
	rg *gin.RouterGroup,
	environmentHandler *handlers.EnvironmentHandler,
	addressHandler *handlers.AddressHandler,
	clientHandler *handlers.ClientHandler,
	requestHandler *handlers.ServiceRequestHandler,
) {
	environments := rg.Group(PathEnvironments)
	{
		environments.POST("", environmentHandler.RegisterEnvironment)
		environments.GET("/:environment_id", environmentHandler.GetEnvironment)
		environments.GET("/address/:address_id", environmentHandler.ListEnvironmentsByAddress)
	}

	addresses := rg.Group(PathAddresses)
	{
		addresses.POST("", addressHandler.CreateAddress)
		addresses.GET("/:address_id", addressHandler.GetAddress)
		addresses.PATCH("/:address_id", addressHandler.UpdateAddress)
		addresses.DELETE("/:address_id", addressHandler.DeleteAddress)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:client_id", clientHandler.GetClient)
		clients.GET("/user/:user_id", clientHandler.GetClientByUser)
		clients.GET("/:client_id/addresses", addressHandler.ListAddressesByClient)
		clients.GET("/:client_id/requests", requestHandler.ListRequestsByClient)
		clients.PATCH("/:client_id", clientHandler.UpdateClient)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)
	}
}
