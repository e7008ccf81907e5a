// Package web serves the browser pages. The pages are static shells that call the JSON API.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "ecourts_backend/internal/platform/jwt"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

type page struct {
	Title   string
	Mobile  string
	IsAdmin bool
}

func pageFor(c *gin.Context, title string) page {
	return page{Title: title, Mobile: jwtmw.Mobile(c), IsAdmin: jwtmw.IsAdmin(c)}
}

// PageHandler renders the browser pages. The engine must have Templates installed.
type PageHandler struct{}

// NewPageHandler creates a PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageFor(c, "Home"))
}

// Login handles GET /login.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageFor(c, "Sign in"))
}

// Register handles GET /register.
func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageFor(c, "Register"))
}

// Dashboard handles GET /dashboard. Administrators are sent to /admin.
func (h *PageHandler) Dashboard(c *gin.Context) {
	if jwtmw.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", pageFor(c, "Dashboard"))
}

// Admin handles GET /admin. Standard users are sent back to /dashboard.
func (h *PageHandler) Admin(c *gin.Context) {
	if !jwtmw.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "admin.html", pageFor(c, "Administration"))
}
