package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school_admin/internal/handlers"
	"school_admin/internal/logger"
	"school_admin/internal/mailer"
	"school_admin/internal/repository"
	"school_admin/internal/repository/db"
	"school_admin/internal/server"
	"school_admin/internal/service"

	_ "school_admin/docs"

	"github.com/spf13/viper"
)

const sessionSweepTick = 1 * time.Minute

// @title        School Admin
// @description  Signup, login and password-reset flows for the school administration site.
// @version      1.0
func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger with the configured level
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, newMailer(log), serviceOptions(), log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sweep expired sessions in the background
	go services.Sessions.Run(ctx, sessionSweepTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "school.db")
		dbPath = "school.db"
	}
	return db.InitDB(dbPath)
}

// serviceOptions maps config onto the service knobs.
func serviceOptions() service.Options {
	baseURL := viper.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return service.Options{
		BaseURL:    baseURL,
		SessionTTL: viper.GetDuration("session.ttl"),
	}
}

// newMailer picks SMTP when configured, otherwise the log-only mailer so
// reset links stay out of HTTP responses even in development.
func newMailer(log *logger.Logger) mailer.Mailer {
	cfg := mailer.SMTPConfig{
		Host:     viper.GetString("smtp.host"),
		Port:     viper.GetInt("smtp.port"),
		Username: viper.GetString("smtp.username"),
		Password: viper.GetString("smtp.password"),
		From:     viper.GetString("smtp.from"),
	}
	if cfg.Configured() {
		return mailer.NewSMTPMailer(cfg)
	}
	log.Infow("smtp not configured; reset links will be logged")
	return mailer.NewLogMailer(log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
