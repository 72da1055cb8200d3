package handlers

import (
	"school_admin/internal/logger"
	"school_admin/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(loadTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth pages (form GET + POST on the same path)
	h.registerAuthRoutes(router)

	// Pages behind the session guard
	h.registerProtectedRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/signup", h.signupForm)
	r.POST("/signup", h.signup)

	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)

	r.GET("/logout", h.logout)

	r.GET("/forgot-password", h.forgotPasswordForm)
	r.POST("/forgot-password", h.forgotPassword)

	r.GET("/reset-password", h.resetPasswordForm)
	r.POST("/reset-password", h.resetPassword)
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	protected := r.Group("/", h.sessionMiddleware)
	{
		protected.GET("/dashboard", h.dashboard)
	}
}
