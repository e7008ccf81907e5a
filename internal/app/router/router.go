// Package router wires HTTP routes to handlers.
package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhandler "ecourts_backend/internal/feature/admin/transport/handler"
	authhandler "ecourts_backend/internal/feature/auth/transport/handler"
	casehandler "ecourts_backend/internal/feature/cases/transport/handler"
	causelisthandler "ecourts_backend/internal/feature/causelist/transport/handler"
	hearingshandler "ecourts_backend/internal/feature/hearings/transport/handler"
	platformhandler "ecourts_backend/internal/platform/http/handler"
	jwtmw "ecourts_backend/internal/platform/jwt"
	"ecourts_backend/internal/web"
)

// Handlers groups every handler served by the router.
type Handlers struct {
	Health    *platformhandler.HealthHandler
	Auth      *authhandler.AuthHandler
	Users     *authhandler.UserAdminHandler
	Cases     *casehandler.CaseHandler
	Hearings  *hearingshandler.HearingsHandler
	CauseList *causelisthandler.CauseListHandler
	Stats     *adminhandler.StatsHandler
	Pages     *web.PageHandler
}

// Options configures cross-cutting router behaviour.
type Options struct {
	// CORSOrigins enables CORS with credentials for the listed origins. Empty disables CORS.
	CORSOrigins []string
	Templates   *template.Template
}

// NewRouter builds the gin engine.
func NewRouter(h Handlers, mw *jwtmw.Middleware, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}

	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	// Browser pages
	r.GET("/", h.Pages.Index)
	r.GET("/login", h.Pages.Login)
	r.GET("/register", h.Pages.Register)
	r.GET("/logout", h.Auth.LogoutPage)
	pages := r.Group("/", mw.PageAuthRequired("/login"))
	{
		pages.GET("/dashboard", h.Pages.Dashboard)
		pages.GET("/admin", h.Pages.Admin)
	}

	// Public API
	r.POST("/api/auth/register", h.Auth.Register)
	r.POST("/api/auth/login", h.Auth.Login)
	r.POST("/api/auth/refresh", h.Auth.Refresh)

	api := r.Group("/api", mw.AuthRequired())
	{
		api.POST("/auth/logout", h.Auth.Logout)

		api.POST("/search", h.Cases.Search)
		api.GET("/cases", h.Cases.List)
		api.GET("/service-status", h.Cases.ServiceStatus)
		api.GET("/dashboard", h.Stats.Dashboard)
		api.GET("/live-hearings", h.Hearings.List)

		api.GET("/causelist/complexes", h.CauseList.Complexes)
		api.GET("/causelist/judges", h.CauseList.Judges)
		api.POST("/causelist/download", h.CauseList.Download)
		api.GET("/causelist/download-file", h.CauseList.DownloadFile)

		admin := api.Group("/admin", jwtmw.RequireAdmin())
		{
			admin.GET("/users", h.Users.List)
			admin.POST("/users", h.Users.Create)
			admin.DELETE("/users", h.Users.Delete)
			admin.GET("/stats", h.Stats.AdminStats)
		}
	}

	return r
}
