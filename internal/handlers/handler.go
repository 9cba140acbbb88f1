package handlers

import (
	"time"

	_ "gamenight/docs"
	"gamenight/internal/logger"
	"gamenight/internal/service"
	"gamenight/web"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries the HTTP-facing settings of the handler.
type Options struct {
	CookieName     string
	CookieSecure   bool
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	PublicDir      string
	UploadsDir     string
	UploadMaxBytes int64
}

func (o Options) withDefaults() Options {
	if o.CookieName == "" {
		o.CookieName = "session"
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = 24 * time.Hour
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 5 * time.Second
	}
	if o.UploadMaxBytes <= 0 {
		o.UploadMaxBytes = 5 << 20
	}
	return o
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts.withDefaults()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.sessionMiddleware)
	router.SetHTMLTemplate(web.Templates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	if h.opts.PublicDir != "" {
		router.Static("/static", h.opts.PublicDir)
	}
	if h.opts.UploadsDir != "" {
		router.Static("/uploads", h.opts.UploadsDir)
	}

	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// Long-lived; stays outside the request timeout.
	router.GET("/ws/event/:id", h.requireSession, h.wsEventThread)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	pages := r.Group("/", h.requestTimeout)
	{
		pages.GET("/", h.root)
		pages.GET("/index", h.index)
		pages.GET("/create_event", h.requireSession, h.createEventPage)
		pages.GET("/event/:id", h.requireSession, h.eventView)
		pages.POST("/create_game/:id", h.createGameRedirect)
		pages.GET("/create_game/:id", h.createGamePage)
		pages.GET("/user/:id/profile", h.profilePage)
		pages.GET("/user/:id/edit", h.profileEditPage)
		pages.POST("/logout", h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.requestTimeout)
	{
		h.registerUserRoutes(api)
		h.registerGameRoutes(api)
		h.registerPostRoutes(api)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)
	api.POST("/register", h.register)
	api.POST("/picture", h.requireSession, h.uploadPicture)

	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.POST("/:id", h.requireSession, h.updateUser)
	}
}

func (h *Handler) registerGameRoutes(api *gin.RouterGroup) {
	api.GET("/event/:id", h.getGame)
	api.GET("/events", h.listGames)
	api.POST("/games/new", h.requireSession, h.createGame)
}

func (h *Handler) registerPostRoutes(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.POST("", h.requireSession, h.createPost)
		posts.POST("/:id/comments", h.requireSession, h.addComment)
	}
}
