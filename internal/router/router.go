package router

import (
	"facilitywatch/internal/handlers"
	"facilitywatch/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the handlers are built from.
type Deps struct {
	Reports *handlers.ReportHandler
	Auth    *handlers.AuthHandler
	Admin   *handlers.AdminHandler
	Health  *handlers.HealthHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Public Routes
	r.GET("/", d.Reports.List)              // feed, ?tab=all|mine
	r.GET("/reports/feed", d.Reports.Feed)  // feed cards only, polled by HTMX
	r.GET("/reports/:id", d.Reports.Detail) // report detail + timeline
	r.GET("/healthz", d.Health.Health)      // liveness

	r.GET("/login", d.Auth.ShowLogin)
	r.POST("/login", d.Auth.Login)
	r.GET("/register", d.Auth.ShowRegister)
	r.POST("/register", d.Auth.Register)
	r.GET("/logout", d.Auth.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit", d.Reports.ShowCreate)
		authorized.POST("/submit", d.Reports.Create)
		authorized.POST("/reports/:id/upvote", d.Reports.Upvote)
	}

	// Admin Routes
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("", d.Admin.Index)
		admin.GET("/reports/:id/edit", d.Admin.EditForm)
		admin.POST("/reports/:id", d.Admin.Update)
		admin.DELETE("/reports/:id", d.Admin.Delete)
	}
}
