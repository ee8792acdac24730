package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	service_i "github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies,
// including controllers and the operator authorization middleware.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
	logger                  service_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Base URL for API routes
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
	Logger                  service_i.Logger // Request log; gin's own logger when nil
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		logger:                  config.Logger,
	}
}

// Handler builds the gin engine with every controller registered.
//
// Routes are grouped under the base URL with two access levels:
// - Public routes: No authentication required.
// - Protected routes: pass through the authorization middleware first.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	if r.logger != nil {
		router.Use(requestLogger(r.logger))
	} else {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		protectedRoutes := api.Group("/v1")
		if r.authorizationMiddleware != nil {
			protectedRoutes.Use(r.authorizationMiddleware)
		}
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}

// requestLogger logs one line per request, at a level matching its status.
func requestLogger(logger service_i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(line)
		case status >= http.StatusBadRequest:
			logger.Warn(line)
		default:
			logger.Info(line)
		}
	}
}
