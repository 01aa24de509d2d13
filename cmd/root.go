package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leniks/cinema2/catalog"
	"github.com/leniks/cinema2/config"
	"github.com/leniks/cinema2/identity"
	"github.com/leniks/cinema2/session"
)

var (
	cfgFile        string
	cfg            *config.Config
	logger         zerolog.Logger
	sessions       *session.Manager
	catalogOps     *catalog.Operations
	identityClient *identity.Client

	// Command flags
	pageFlag     int
	sizeFlag     int
	filterExpr   string
	usernameFlag string
	passwordFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cinema",
	Short: "A client for the online cinema catalog and identity services",
	Long: `cinema is a CLI client for the online cinema backends. It browses and
searches the movie catalog, resolves playback URLs, and manages the
authenticated session derived from the identity service's bearer token.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, session and service clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Restore any persisted session before the first request goes out
	sessions = session.NewManager(session.NewFileStore(cfg.Session.Path), logger)
	if err := sessions.Init(); err != nil {
		logger.Warn().Err(err).Msg("Failed to restore session, continuing anonymous")
	}
	sessions.OnInvalidated(func() {
		fmt.Fprintln(os.Stderr, "Session expired, run 'cinema login' to sign in again.")
	})

	catalogClient, err := catalog.NewClient(cfg.Catalog.URL, logger,
		catalog.WithTokenSource(sessions),
		catalog.WithUnauthorizedHandler(sessions.HandleUnauthorized),
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	norm := catalog.NewNormalizer(cfg.Assets.URL, cfg.Assets.Bucket)
	catalogOps = catalog.NewOperations(catalogClient, norm, logger)

	identityClient, err = identity.NewClient(cfg.Identity.URL, logger,
		identity.WithTokenSource(sessions),
		identity.WithUnauthorizedHandler(sessions.HandleUnauthorized),
	)
	if err != nil {
		return fmt.Errorf("failed to create identity client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
