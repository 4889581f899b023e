package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/printfloor/internal/api/handlers"
	"github.com/andresuchdata/printfloor/internal/api/middleware"
	"github.com/andresuchdata/printfloor/internal/development"
	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Orders      *service.OrderService
	Plans       *service.PlanService
	Downtime    *service.DowntimeService
	Ledger      *ledger.Ledger
	Development *development.Workflow
	Reports     *report.Engine
}

// NewRouter builds the HTTP surface. requestTimeout bounds each request's
// wait for the stores.
func NewRouter(services *Services, allowedOrigins []string, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRole, middleware.HeaderName},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.Identity())
	router.Use(middleware.Timeout(requestTimeout))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services == nil {
		return router
	}

	if services.Orders != nil {
		orderHandler := handlers.NewOrderHandler(services.Orders)
		orderGroup := apiGroup.Group("/orders")
		{
			orderGroup.GET("", orderHandler.ListOrders)
			orderGroup.POST("", orderHandler.CreateOrder)
			orderGroup.PUT("/:id", orderHandler.UpdateOrder)
			orderGroup.DELETE("/:id", orderHandler.DeleteOrder)
			orderGroup.GET("/customers", orderHandler.Customers)
			orderGroup.GET("/styles", orderHandler.Styles)
		}
	}

	if services.Plans != nil {
		planHandler := handlers.NewPlanHandler(services.Plans)
		planGroup := apiGroup.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.PUT("/:id", planHandler.UpdatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
			planGroup.GET("/customers", planHandler.Customers)
			planGroup.GET("/styles", planHandler.Styles)
		}
	}

	if services.Downtime != nil {
		downtimeHandler := handlers.NewDowntimeHandler(services.Downtime)
		downtimeGroup := apiGroup.Group("/downtime")
		{
			downtimeGroup.GET("", downtimeHandler.ListDowntime)
			downtimeGroup.POST("", downtimeHandler.LogDowntime)
			downtimeGroup.GET("/categories", downtimeHandler.Categories)
			downtimeGroup.PUT("/:id", downtimeHandler.EditDowntime)
			downtimeGroup.POST("/:id/acknowledge", downtimeHandler.Acknowledge)
			downtimeGroup.DELETE("/:id", downtimeHandler.DeleteDowntime)
		}
	}

	if services.Ledger != nil {
		ledgerHandler := handlers.NewLedgerHandler(services.Ledger)
		ledgerGroup := apiGroup.Group("/ledger")
		{
			ledgerGroup.GET("", ledgerHandler.GetGrid)
			ledgerGroup.PUT("/slots/:slot/label", ledgerHandler.SetSlotLabel)
			ledgerGroup.PUT("/slots/:slot/counters/:field", ledgerHandler.SetCounter)
			ledgerGroup.PUT("/edit_mode", ledgerHandler.SetEditMode)
			ledgerGroup.POST("/submit", ledgerHandler.Submit)
		}
		apiGroup.GET("/outputs", ledgerHandler.ListOutputs)
	}

	if services.Development != nil {
		devHandler := handlers.NewDevelopmentHandler(services.Development)
		devGroup := apiGroup.Group("/development")
		{
			devGroup.GET("", devHandler.ListItems)
			devGroup.POST("", devHandler.SubmitRequest)
			devGroup.POST("/:id/approve", devHandler.Approve)
			devGroup.POST("/:id/reject", devHandler.Reject)
			devGroup.GET("/artwork", devHandler.Artwork)
		}
	}

	if services.Reports != nil {
		reportHandler := handlers.NewReportHandler(services.Reports)
		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("/summary", reportHandler.Summary)
			reportGroup.GET("/matrix", reportHandler.Matrix)
			reportGroup.GET("/floor_sheet", reportHandler.FloorSheet)
			reportGroup.GET("/plans", reportHandler.PlansForDate)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
