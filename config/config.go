package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	BACKEND_URL=http://localhost:3000
//	MONGO_URI=mongodb://localhost:27017
//	MONGO_DB=marketDB
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Backend BackendConfig // Market-data backend settings
	Mongo   MongoConfig   // MongoDB connection settings (provisioning only)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // TCP port the HTTP server listens on (e.g., "8080")
}

// BackendConfig holds the single deployment option the stock client needs:
// the base URL of the market-data backend.
type BackendConfig struct {
	URL string
}

// MongoConfig defines connection details for MongoDB.
//
// Only the provisioning mode touches the store; the API mode never opens a
// database connection.
type MongoConfig struct {
	URI      string // connection string (e.g., "mongodb://localhost:27017")
	Database string // target database name (e.g., "marketDB")
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BACKEND_URL", "http://localhost:3000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "marketDB")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Backend: BackendConfig{
			URL: viper.GetString("BACKEND_URL"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing, avoiding unexpected runtime failures
// from incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Backend.URL == "" {
		missing = append(missing, "BACKEND_URL")
	}
	if AppConfig.Mongo.URI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if AppConfig.Mongo.Database == "" {
		missing = append(missing, "MONGO_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
