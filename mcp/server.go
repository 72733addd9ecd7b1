// Package mcp exposes a Shopwire store to MCP-capable agent hosts as a set
// of read-only tools backed by the typed client.
package mcp

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shopwire/shopwire-go/client"
	"github.com/shopwire/shopwire-go/mcp/handlers"
)

// config holds all settings for the MCP server.
type config struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	LogLevel       zerolog.Level
	ServerName     string
	ServerVersion  string
}

// loadConfig loads configuration from environment variables.
func loadConfig() *config {
	return &config{
		StoreURL:       os.Getenv("SHOPWIRE_STORE_URL"),
		ConsumerKey:    os.Getenv("SHOPWIRE_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("SHOPWIRE_CONSUMER_SECRET"),
		ServerName:     getEnvOrDefault("MCP_SERVER_NAME", "shopwire-mcp-server"),
		ServerVersion:  getEnvOrDefault("MCP_SERVER_VERSION", client.Version),
		LogLevel:       parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
	}
}

func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.With().Caller().Logger()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunMCPServer starts the MCP server over stdio.
func RunMCPServer() error {
	cfg := loadConfig()
	cfg.initLogger()

	log.Info().Str("store_url", cfg.StoreURL).Msg("Creating Shopwire client")
	sw, err := client.New(cfg.StoreURL, cfg.ConsumerKey, cfg.ConsumerSecret)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create client")
		return err
	}

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewProductsHandler(sw), "products")
	registerHandler(s, handlers.NewOrdersHandler(sw), "orders")

	log.Info().Msg("Starting Shopwire MCP server (stdio transport)")
	if err := server.ServeStdio(s); err != nil {
		log.Error().Err(err).Msg("Stdio server error")
		return err
	}
	return nil
}
