package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string  // Host IP for the server
	RESTPort       int     // Port for the REST API
	GinMode        string  // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr      string  // host:port of the redis instance caching mazes
	RedisPassword  string  // Password for redis, empty when none
	MazeTTLSeconds int     // How long a generated maze stays retrievable
	JWTSecret      string  // Secret key for JWT signing
	JWTIssuer      string  // Issuer claim for JWTs
	MazeRows       int     // Default number of rows
	MazeCols       int     // Default number of columns
	VerticalProb   float64 // Default probability of a vertical wall
	HorizontalProb float64 // Default probability of a horizontal wall
	MazeSeed       int64   // Fixed seed for every maze; 0 seeds from the clock
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:      mustGetEnv("REDIS_ADDR"),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		MazeTTLSeconds: getEnvAsIntWithDefault("MAZE_TTL_SECONDS", 600),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		JWTIssuer:      mustGetEnv("JWT_ISSUER"),
		MazeRows:       getEnvAsIntWithDefault("MAZE_ROWS", 30),
		MazeCols:       getEnvAsIntWithDefault("MAZE_COLS", 30),
		VerticalProb:   getEnvAsFloatWithDefault("MAZE_VERTICAL_PROB", 0.4),
		HorizontalProb: getEnvAsFloatWithDefault("MAZE_HORIZONTAL_PROB", 0.3),
		MazeSeed:       getEnvAsInt64WithDefault("MAZE_SEED", 0),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, falling back to defaultValue when unset.
// A set but malformed value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
