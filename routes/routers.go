package routes

import (
	"hotel-reservation-api/controllers"
	_ "hotel-reservation-api/docs"
	"hotel-reservation-api/middleware"
	"hotel-reservation-api/response"
	"hotel-reservation-api/services"
	"hotel-reservation-api/services/logger"
	"hotel-reservation-api/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the routes are built from
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Melody  *melody.Melody
	Logger  logger.Logger
	Limiter middleware.Limiter
}

// Services groups the services behind the routes
type Services struct {
	Clients      *services.ClientService
	Rooms        *services.RoomService
	Reservations *services.ReservationService
	Stats        *services.StatsService
	Health       *services.HealthService
}

// NewServices builds every service from the shared dependencies. Reservation
// events go to websocket subscribers when melody is set.
func NewServices(deps Dependencies) Services {
	var notifier notification.Service = notification.NopService{}
	if deps.Melody != nil {
		notifier = notification.NewMelodyService(deps.Melody)
	}
	opts := services.ServiceOptions{DB: deps.DB, Logger: deps.Logger, Notifier: notifier}

	return Services{
		Clients:      services.NewClientService(opts),
		Rooms:        services.NewRoomService(opts),
		Reservations: services.NewReservationService(opts),
		Stats:        services.NewStatsService(opts),
		Health:       services.NewHealthService(deps.DB, deps.Redis),
	}
}

func SetupRoutes(router *gin.Engine, deps Dependencies, svc Services) {
	if deps.Logger == nil {
		deps.Logger = logger.NewNopLogger()
	}

	clientController := controllers.NewClientController(svc.Clients)
	roomController := controllers.NewRoomController(svc.Rooms)
	reservationController := controllers.NewReservationController(svc.Reservations)
	statsController := controllers.NewStatsController(svc.Stats)
	healthController := controllers.NewHealthController(svc.Health)

	router.GET("/", healthController.Index)
	router.GET("/ping", healthController.Ping)
	router.GET("/health", healthController.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Melody != nil {
		router.GET("/ws", func(c *gin.Context) {
			if err := deps.Melody.HandleRequest(c.Writer, c.Request); err != nil {
				deps.Logger.Warn("websocket upgrade failed: %v", err)
			}
		})
	}

	api := router.Group("/api")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
	}

	api.GET("/clients", clientController.GetClients)
	api.POST("/clients", clientController.CreateClient)
	api.GET("/clients/:id", clientController.GetClient)
	api.PUT("/clients/:id", clientController.UpdateClient)
	api.DELETE("/clients/:id", clientController.DeleteClient)

	api.GET("/rooms", roomController.GetRooms)
	api.POST("/rooms", roomController.CreateRoom)
	api.GET("/rooms/:id", roomController.GetRoom)
	api.PUT("/rooms/:id", roomController.UpdateRoom)
	api.DELETE("/rooms/:id", roomController.DeleteRoom)

	api.GET("/reservations", reservationController.GetReservations)
	api.POST("/reservations", reservationController.CreateReservation)
	api.GET("/reservations/:id", reservationController.GetReservation)
	api.PUT("/reservations/:id", reservationController.UpdateReservation)
	api.PUT("/reservations/:id/cancel", reservationController.CancelReservation)
	api.DELETE("/reservations/:id", reservationController.DeleteReservation)

	api.GET("/stats", statsController.GetStats)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
}
