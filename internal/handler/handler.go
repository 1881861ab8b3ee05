package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/BloggingApp/user-service/internal/config"
	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/BloggingApp/user-service/internal/requestid"
	"github.com/BloggingApp/user-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	cfg      config.AppConfig
}

func New(services *service.Service, logger *zap.Logger, cfg config.AppConfig) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(h.requestIDMiddleware, h.loggerMiddleware, gin.CustomRecovery(h.recoveryHandler))
	r.Use(cors.New(h.corsConfig()))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/health", h.health)

	r.GET("/", h.pagesHome)
	r.GET("/user", h.pagesUser)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", h.usersGetAll)
			users.GET("/user", h.usersGetByID)
			users.GET("/:id", h.usersGetByID)
		}
	}

	return r
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", requestid.Header},
		ExposeHeaders: []string{requestid.Header},
	}

	origin := h.cfg.ClientOrigin
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	return cfg
}

// requestOrigin is the base URL pages use to reach the API: the configured
// api.origin, or the scheme and host the request arrived on.
func (h *Handler) requestOrigin(c *gin.Context) string {
	if h.cfg.APIOrigin != "" {
		return h.cfg.APIOrigin
	}

	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}

	return scheme + "://" + c.Request.Host
}

func (h *Handler) health(c *gin.Context) {
	if err := h.services.Health.Check(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}
