package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-pathfinder/api/maze"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/mazestore"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeStore      i.MazeStore
	mazeService    i.MazeService
	jwtTokenizer   i.Tokenizer
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeStore(client *redis.Client) {
	storeLogger, err := logger.New("MAZE-STORE", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze store logger: %v", err))
		os.Exit(1)
	}

	mazeStore, err = mazestore.NewRedisStore(client, config.Envs.MazeTTLSeconds, storeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze store initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(mazeStore, serviceLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, mazeapi.Defaults{
		Rows:           config.Envs.MazeRows,
		Cols:           config.Envs.MazeCols,
		VerticalProb:   config.Envs.VerticalProb,
		HorizontalProb: config.Envs.HorizontalProb,
		Seed:           config.Envs.MazeSeed,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	httpLogger, err := logger.New("HTTP", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating HTTP logger: %v", err))
		os.Exit(1)
	}

	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.RequireScope(t, i.ScopeMazeWrite),
		Logger:                  httpLogger,
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initMazeStore(redisClient)
	initMazeService()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
