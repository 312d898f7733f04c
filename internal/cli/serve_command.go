package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarapi/internal/api/handlers"
	"solarapi/internal/audit"
	"solarapi/internal/config"
	"solarapi/internal/housekeeping"
	"solarapi/internal/httpserver"
	"solarapi/internal/logging"
	"solarapi/internal/repository"
	"solarapi/internal/services"
	"solarapi/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shutdownTimeout bounds how long in-flight requests may take during shutdown.
const shutdownTimeout = 30 * time.Second

type ServeOptions struct {
	Host           string
	Port           int
	SummaryPath    string
	SummaryMaxSize string
	AuditEnabled   bool
	Retention      string
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, globalOptions)
		},
	}

	serveOptions.registerFlags(serveCmd.Flags())

	return serveCmd
}

func (options *ServeOptions) registerFlags(flags *pflag.FlagSet) {
	// flags for the serve command only
	flags.StringVar(&options.Host, "host", "", "Interface the HTTP server binds to. (Env: SOLAR_HOST)")
	flags.IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: SOLAR_PORT)")
	flags.StringVar(&options.SummaryPath, "summary-path", "", "Path to the summary.json written by edge_run.py. (Env: SOLAR_SUMMARY_PATH)")
	flags.StringVar(&options.SummaryMaxSize, "summary-max-size", "", "Largest summary document that will be served (e.g. '8MB'). (Env: SOLAR_SUMMARY_MAX_SIZE)")
	flags.StringVar(&options.Retention, "retention", "", "How long cleaning requests are kept (e.g. '90d', '0' keeps all). (Env: SOLAR_RETENTION)")
	flags.BoolVar(&options.AuditEnabled, "audit-enabled", false, "Enable audit logging of cleaning requests. (Env: SOLAR_AUDIT_ENABLED=true)")
}

// openStore opens and validates the cleaning-request database. When that fails
// the error is logged and a store that rejects every call is returned, so health
// and summary are still served. repo is nil in that case.
func openStore(cfg *config.Config) (services.CleanStore, *repository.Repository) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		logging.Log.Errorf("Cleaning requests disabled, failed to initialize repository: %v", err)
		return services.NewUnavailableCleanStore(err), nil
	}

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Cleaning requests disabled, failed to bootstrap database: %v", err)
		repo.Close()
		return services.NewUnavailableCleanStore(err), nil
	}
	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("Cleaning requests are disabled until the schema is migrated.")
		logging.Log.Error("---------------------------------------------------------------")
		repo.Close()
		return services.NewUnavailableCleanStore(err), nil
	}

	return repo, repo
}

// buildRouter wires the services and handlers on top of store.
func buildRouter(cfg *config.Config, store services.CleanStore) http.Handler {
	summaryFile := storage.NewOsSummaryFile(cfg.SummaryAbsPath, cfg.SummaryMaxSizeBytes)
	infoService := services.NewInfoService(Version, StartTime)
	summaryService := services.NewSummaryService(summaryFile)
	auditor := audit.NewLoggerAuditor(logging.Log, cfg.Logging.AuditEnabled)
	cleanService := services.NewCleanService(store, auditor)

	logging.Log.Infof("Serving edge summary from %s", summaryFile.Path())
	return httpserver.SetupRouter(handlers.NewHandlers(infoService, summaryService, cleanService))
}

// runServer starts the HTTP server and blocks until a signal or a serve error.
func runServer(cmd *cobra.Command, globalOptions *GlobalOptions) error {
	cfg := globalOptions.Conf

	store, repo := openStore(cfg)
	if repo != nil {
		defer repo.Close()

		hkService := housekeeping.NewService(housekeeping.Dependencies{Store: repo}, cfg.Retention, cfg.HkInterval)
		hkService.Start()
		defer hkService.Stop()
	}

	srv := httpserver.NewServer(cfg, buildRouter(cfg, store))
	if err := srv.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srv.Done():
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Log.Error(err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
