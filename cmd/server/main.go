package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgrewal/tinylink/internal/config"
	"github.com/sgrewal/tinylink/internal/repository/sqlite"
	"github.com/sgrewal/tinylink/internal/service"
	"github.com/sgrewal/tinylink/internal/shortener"
	"github.com/sgrewal/tinylink/internal/transport/client"
	httpTransport "github.com/sgrewal/tinylink/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "tinylink",
	Short: "A URL shortening service written in Go",
	Long:  "A URL shortening service with a SQLite backend, a JSON API, a dashboard, and per-link click stats",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the link shortening server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for interacting with the server",
}

var createCmd = &cobra.Command{
	Use:   "create [URL]",
	Short: "Create a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateLink,
}

var getCmd = &cobra.Command{
	Use:   "get [CODE]",
	Short: "Show stats for a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetLink,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [CODE]",
	Short: "Delete a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteLink,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all short links",
	RunE:  runListLinks,
}

func init() {
	// A .env file, when present, feeds the flag defaults below
	config.LoadEnv()

	// Server command flags
	serverCmd.Flags().StringP("port", "p", config.Getenv("PORT", "8080"), "Server port")
	serverCmd.Flags().String("base-url", config.Getenv("BASE_URL", "http://localhost:8080"), "Base URL clients use to build full short links")
	serverCmd.Flags().String("db-path", config.Getenv("DATABASE_PATH", "links.db"), "Database file path")

	// Logging configuration flags
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging (HTTP requests/responses and error details)")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", config.Getenv("BASE_URL", "http://localhost:8080"), "Server URL")
	createCmd.Flags().StringP("code", "c", "", "Custom code (6-8 letters/digits); empty lets the server allocate one")

	// Add subcommands
	clientCmd.AddCommand(createCmd, getCmd, deleteCmd, listCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	// Get configuration from CLI flags
	port, _ := cmd.Flags().GetString("port")
	baseURL, _ := cmd.Flags().GetString("base-url")
	dbPath, _ := cmd.Flags().GetString("db-path")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.New(port, baseURL, dbPath, verbose)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	log.Printf("Starting tinylink server with config: port=%s db=%s", cfg.Server.Port, cfg.Database.Path)

	// Initialize database
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize the link service with a time-seeded code generator
	links := service.NewLinkService(repo, shortener.NewRandomGenerator())
	defer func() {
		if err := links.Close(); err != nil {
			log.Printf("Error closing link service: %v", err)
		}
	}()

	// Create and start HTTP server
	server := httpTransport.NewServer(links, cfg.Server.Port, cfg.Server.BaseURL, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

func newCommands(cmd *cobra.Command) *client.Commands {
	serverURL, _ := cmd.Flags().GetString("server-url")
	return client.NewCommands(client.NewClient(serverURL), serverURL)
}

func runCreateLink(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetString("code")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Create(ctx, args[0], code)
}

func runGetLink(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Get(ctx, args[0])
}

func runDeleteLink(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Delete(ctx, args[0])
}

func runListLinks(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).List(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
