package http

import (
	"net/http"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/config"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	sessions *services.SessionStore,
	logger ports.LoggerPort,
	vehicleHandler *VehicleHandler,
	odometerHandler *OdometerHandler,
	maintenanceHandler *MaintenanceHandler,
	dashboardHandler *DashboardHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", sessionHeader},
		ExposeHeaders:    []string{"Content-Length", sessionHeader},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Vehicles routes
	vehicles := router.Group("/vehicles")
	vehicles.Use(SessionMiddleware(sessions, logger))
	{
		vehicles.POST("", vehicleHandler.RegisterVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.RemoveVehicle)
		vehicles.POST("/:id/select", vehicleHandler.SelectVehicle)
		vehicles.POST("/:id/photo", vehicleHandler.AttachPhoto)
		vehicles.POST("/:id/odometer", odometerHandler.AdvanceOdometer)
		vehicles.GET("/:id/trips", odometerHandler.ListTrips)
		vehicles.POST("/:id/records", maintenanceHandler.AddRecord)
		vehicles.GET("/:id/records", maintenanceHandler.ListRecords)
		vehicles.GET("/:id/dashboard", dashboardHandler.GetDashboard)
		vehicles.GET("/:id/documents", dashboardHandler.ListDocuments)
	}
	// Records routes
	records := router.Group("/records")
	records.Use(SessionMiddleware(sessions, logger))
	{
		records.GET("/:id", maintenanceHandler.GetRecord)
	}
	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
