package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahultadvi/chatflow/internal/adapters/httpapi"
	"github.com/rahultadvi/chatflow/internal/adapters/memory"
	redisadapter "github.com/rahultadvi/chatflow/internal/adapters/redis"
	"github.com/rahultadvi/chatflow/internal/config"
	"github.com/rahultadvi/chatflow/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the automation persistence server",
	Long:  `Starts the reference persistence API, exposing automation CRUD as multipart and JSON endpoints over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		logger := logging.New(cfg.SlogLevel())
		store := memory.NewStore()

		opts := []httpapi.ServerOption{httpapi.WithServerLogger(logger)}
		if cfg.RedisAddr != "" {
			cache := redisadapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
				redisadapter.WithTTL(cfg.CacheTTL))
			opts = append(opts, httpapi.WithCache(cache))
			logger.Info("listing cache enabled", "addr", cfg.RedisAddr)
		}

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: httpapi.NewHandler(store, opts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Chatflow Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Chatflow Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides CHATFLOW_ADDR)")
}
