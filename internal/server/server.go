package server

import (
	"context"
	"net/http"

	"membertrack/internal/config"
	"membertrack/internal/dashboard"
	"membertrack/internal/member"
	"membertrack/internal/payment"
	"membertrack/internal/spreadsheet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	memberService := member.NewService(member.NewRepository(db))
	memberHandler := member.NewHandler(memberService)

	paymentService := payment.NewService(payment.NewRepository(db), cfg.RequireMemberOnPayment)
	paymentHandler := payment.NewHandler(paymentService)

	dashboardHandler := dashboard.NewHandler(dashboard.NewRepository(db))

	spreadsheetHandler := spreadsheet.NewHandler(spreadsheet.NewService(), memberService)

	api := router.Group("/api")
	{
		api.GET("/members", memberHandler.ListMembers)
		api.POST("/members", memberHandler.CreateMember)
		api.PUT("/members/:memberID", memberHandler.UpdateMember)
		api.DELETE("/members/:memberID", memberHandler.DeleteMember)

		api.GET("/payments", paymentHandler.ListPayments)
		api.POST("/payments", paymentHandler.RecordPayment)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)

		api.POST("/members/export", spreadsheetHandler.Export)
		api.POST("/members/import", spreadsheetHandler.Import)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	RegisterSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
