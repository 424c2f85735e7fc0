package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-go/config"
	"github.com/s0up4200/tmdb-go/filter"
	"github.com/s0up4200/tmdb-go/tmdb"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *tmdb.Client
	filters    *filter.Manager
	outputFlag string
	language   string
	noCache    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbctl",
	Short: "Query The Movie Database from the command line",
	Long: `tmdbctl looks up movies, shows and people on The Movie Database (TMDB).

Lists can be narrowed down with filter expressions, either written inline or
referenced by the name they have under "filters" in the config file:

  tmdbctl popular --filter 'VoteAverage >= 7.5 and hasGenre("drama")'
  tmdbctl trending --type movie --filter recent`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	logger = zerolog.Nop()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "response language, e.g. de-DE")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
}

// initializeApp loads the configuration and builds the TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if outputFlag != "" {
		cfg.Output.Format = outputFlag
	}
	if err := validateFormat(cfg.Output.Format); err != nil {
		return err
	}
	if language != "" {
		cfg.TMDB.Language = language
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	filters = filter.NewManager(filter.WithEvaluator(filter.NewConcurrentEvaluator(filter.WithLogger(logger))))
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filter in config: %w", err)
	}

	return nil
}

// newClient translates the configuration into client options
func newClient(cfg *config.Config, logger zerolog.Logger) (*tmdb.Client, error) {
	opts := []tmdb.Option{
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithRegion(cfg.TMDB.Region),
		tmdb.WithTimeout(cfg.HTTP.Timeout),
		tmdb.WithRetry(cfg.HTTP.MaxRetries > 0),
		tmdb.WithMaxRetries(cfg.HTTP.MaxRetries),
		tmdb.WithRetryDelay(cfg.HTTP.RetryDelay),
		tmdb.WithRetryTimeouts(cfg.HTTP.RetryTimeouts),
		tmdb.WithCompression(cfg.HTTP.Compression),
		tmdb.WithUserAgent(cfg.HTTP.UserAgent),
	}
	if cfg.TMDB.APIKey != "" {
		opts = append(opts, tmdb.WithAPIKey(cfg.TMDB.APIKey))
	}
	if cfg.TMDB.AccessToken != "" {
		opts = append(opts, tmdb.WithAccessToken(cfg.TMDB.AccessToken))
	}
	if cfg.TMDB.SessionID != "" {
		opts = append(opts, tmdb.WithSessionID(cfg.TMDB.SessionID))
	}
	if cfg.HTTP.RateLimit > 0 {
		opts = append(opts, tmdb.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst))
	}
	if cfg.Cache.Enabled {
		opts = append(opts, tmdb.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	} else {
		opts = append(opts, tmdb.WithoutCache())
	}

	return tmdb.NewClient(logger, opts...)
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
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// skipInit lets commands that need no config bypass initializeApp
func skipInit(*cobra.Command, []string) error {
	return nil
}
