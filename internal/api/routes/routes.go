package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridhire/gridhire/internal/api/handlers"
	"github.com/gridhire/gridhire/internal/api/middleware"
)

type Deps struct {
	Interview *handlers.InterviewHandler
	Admin     *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Candidate flow (public)
	r.POST("/start", d.Interview.Start)
	r.POST("/answer/:interview_id", d.Interview.Answer)

	r.POST("/admin/login", d.Admin.Login)

	// Protected routes (JWT, admin role)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(), middleware.RequireAdmin())

	// legacy alias for the admin listing
	auth.GET("/reports", d.Admin.ListReports)

	admin := auth.Group("/admin")
	admin.GET("/reports", d.Admin.ListReports)
	admin.GET("/report/:report_id", d.Admin.GetReport)
	admin.GET("/analytics", d.Admin.Analytics)
}
