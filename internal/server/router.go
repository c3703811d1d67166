package server

import (
	"net/http"

	"ai-act-tracker/internal/config"
	"ai-act-tracker/internal/handlers"
	"ai-act-tracker/internal/middleware"
	"ai-act-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, readiness handlers.ReadinessEvaluator, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 8 * 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("aiact_session", store))

	// AUTH
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	editors := middleware.RequireRole(models.RoleAdmin, models.RoleOfficer)

	// AI SYSTEMS
	api.GET("/systems", handlers.ListSystems)
	api.POST("/systems", editors, handlers.CreateSystem)
	api.GET("/systems/:id", handlers.ShowSystem)

	// GAP ASSESSMENT
	api.POST("/systems/:id/gap-assessment", editors, handlers.CreateGapAssessment)
	api.PATCH("/systems/:id/requirements/:req_id", editors, handlers.UpdateRequirementStatus)

	// TECHNICAL DOCUMENTATION
	api.PUT("/systems/:id/documentation", editors, handlers.SaveDocumentation)

	// RISKS
	api.POST("/systems/:id/risks", editors, handlers.CreateRisk)
	api.POST("/systems/:id/risks/:risk_id/mitigations", editors, handlers.AddMitigation)
	api.PATCH("/systems/:id/mitigations/:action_id", editors, handlers.UpdateMitigationStatus)

	// GOVERNANCE
	api.POST("/systems/:id/roles", editors, handlers.AddRole)
	api.POST("/systems/:id/roles/:role_id/deactivate", editors, handlers.DeactivateRole)

	// CERTIFICATION READINESS
	api.GET("/systems/:id/readiness", handlers.NewReadinessHandler(readiness).Show)

	// AUDIT
	api.GET("/audit", middleware.RequireRole(models.RoleAdmin), handlers.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return r
}
