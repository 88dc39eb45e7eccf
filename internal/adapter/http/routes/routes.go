package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "laundry_pos/docs" // This will be auto-generated
	"laundry_pos/internal/adapter/http/handlers"
	"laundry_pos/internal/adapter/persistence/repository"
	"laundry_pos/internal/infrastructure/backend"
	"laundry_pos/internal/infrastructure/database"
	"laundry_pos/internal/infrastructure/payments"
	"laundry_pos/internal/poller"
	"laundry_pos/internal/usecase"
	"laundry_pos/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log.SetFormatter(&log.JSONFormatter{})

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	draftRepo := repository.NewDraftDynamoRepository(ddb)

	backendClient := backend.NewClientFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	// The watcher's confirmation callback resets the draft, which needs the
	// checkout use case, which needs the watcher. The closure breaks the
	// cycle by capturing the variable, assigned right below.
	var checkoutUseCase *usecase.CheckoutUseCase
	watcher := poller.NewWatcher(backendClient, func(ctx context.Context, orderID, draftID string) {
		checkoutUseCase.HandlePaymentConfirmed(ctx, orderID, draftID)
	}, poller.WithPollInterval(pollIntervalFromEnv()))
	checkoutUseCase = usecase.NewCheckoutUseCase(draftRepo, backendClient, paymentGateway, watcher)

	draftUseCase := usecase.NewDraftUseCase(draftRepo, backendClient, backendClient)
	catalogUseCase := usecase.NewCatalogUseCase(backendClient)
	customerUseCase := usecase.NewCustomerUseCase(backendClient)

	posHandler := handlers.NewPosHandler(draftUseCase, checkoutUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPosRoutes(v1, posHandler, catalogHandler, customerHandler)
}

func pollIntervalFromEnv() time.Duration {
	raw := os.Getenv("PAYMENT_POLL_INTERVAL_SECONDS")
	if raw == "" {
		return 15 * time.Second
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("invalid PAYMENT_POLL_INTERVAL_SECONDS=%q, using default", raw)
		return 15 * time.Second
	}
	return time.Duration(secs) * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
