package routes

import (
	"log"
	"os"
	"strconv"

	_ "gta_clima/docs" // This will be auto-generated
	"gta_clima/internal/adapter/http/handlers"
	repository2 "gta_clima/internal/adapter/persistence/repository"
	"gta_clima/internal/infrastructure/database"
	"gta_clima/internal/infrastructure/payments"
	"gta_clima/internal/usecase"
	"gta_clima/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	historyRepo := repository2.NewHistoryDynamoRepository(ddb)
	environmentRepo := repository2.NewEnvironmentDynamoRepository(ddb)
	addressRepo := repository2.NewAddressDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	officerRepo := repository2.NewOfficerDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)

	claims := repository2.NewUniquenessClaimDynamoRepository(ddb)
	sequences := repository2.NewSequenceDynamoRepository(ddb)
	writer := repository2.NewDynamoTransactionWriter(ddb)

	var billingGateway interfaces.IBillingGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		billingGateway = mpGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, environmentRepo, addressRepo, clientRepo, officerRepo, claims, sequences, writer)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, requestRepo, claims, sequences, writer, billingGateway)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, requestRepo, budgetRepo, officerRepo, serviceRepo, sequences, writer)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo, environmentRepo, requestRepo, orderRepo, claims, writer)
	environmentUseCase := usecase.NewEnvironmentUseCase(environmentRepo, requestRepo, addressRepo, clientRepo, claims, sequences, writer)
	addressUseCase := usecase.NewAddressUseCase(addressRepo, environmentRepo, requestRepo, budgetRepo, orderRepo, clientRepo, officerRepo, claims, writer)
	clientUseCase := usecase.NewClientUseCase(clientRepo, addressRepo, environmentRepo, requestRepo, budgetRepo, orderRepo, claims, sequences, writer)
	officerUseCase := usecase.NewOfficerUseCase(officerRepo, claims, sequences, writer)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, claims, writer)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	historyHandler := handlers.NewHistoryHandler(historyUseCase)
	environmentHandler := handlers.NewEnvironmentHandler(environmentUseCase)
	addressHandler := handlers.NewAddressHandler(addressUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	officerHandler := handlers.NewOfficerHandler(officerUseCase)
	serviceHandler := handlers.NewServiceCatalogHandler(serviceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLifecycleRoutes(v1, requestHandler, budgetHandler, orderHandler, historyHandler)
	addRegistryRoutes(v1, environmentHandler, addressHandler, clientHandler, requestHandler)
	addStaffRoutes(v1, officerHandler, serviceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
