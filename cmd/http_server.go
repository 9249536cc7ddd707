package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/employee"
	employeeSQLite "github.com/frahmantamala/employee-records/internal/employee/sqlite"
	"github.com/frahmantamala/employee-records/internal/session"
	"github.com/frahmantamala/employee-records/internal/transport/rest"
	"github.com/frahmantamala/employee-records/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	DB              *gorm.DB
	Router          *chi.Mux
	Store           *employee.Store
	SessionHandler  *session.Handler
	EmployeeHandler *employee.Handler
	Logger          *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		closeDB(deps.DB)
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	sqlDB, err := deps.DB.DB()
	if err != nil {
		slog.Error("failed to access underlying database", "error", err)
		sqlDB = nil
	}
	rest.RegisterAllRoutes(deps.Router, sqlDB, deps.SessionHandler, deps.EmployeeHandler, deps.Config.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	storage := employeeSQLite.NewStorage(db)
	store := employee.NewStore(storage, lg)
	if _, err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize employee store: %w", err)
	}

	cred, err := operatorCredential(config.Security.Operator)
	if err != nil {
		return nil, err
	}

	tokenGen := session.NewJWTTokenGenerator(config.Security.SessionSecret, config.Security.AccessTokenDuration)
	sessionService := session.NewService(cred, tokenGen, lg)

	return &Dependencies{
		Config:          config,
		Logger:          lg,
		DB:              db,
		Router:          chi.NewRouter(),
		Store:           store,
		SessionHandler:  session.NewHandler(sessionService),
		EmployeeHandler: employee.NewHandler(store),
	}, nil
}

// initDB opens the SQLite file backing the employee slot.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying database: %w", err)
	}
	// The slot has a single writer; one connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// operatorCredential resolves the configured credential, hashing a plaintext
// development password when no bcrypt hash is provided.
func operatorCredential(cfg internal.OperatorConfig) (session.Credential, error) {
	hash := cfg.PasswordHash
	if hash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return session.Credential{}, fmt.Errorf("failed to hash operator password: %w", err)
		}
		hash = string(h)
	}

	name := cfg.Name
	if name == "" {
		name = cfg.Username
	}

	return session.Credential{
		Username:     cfg.Username,
		Name:         name,
		PasswordHash: hash,
	}, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access underlying database", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("Database close error", "error", err)
	}
}
