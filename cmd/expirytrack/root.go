// Root command for the expirytrack CLI.
package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/auth"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/cache"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/gateway"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/logging"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/mutate"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/paths"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/session"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Application state initialized by PersistentPreRunE and shared by all
// subcommands.
var (
	appConfig types.Config
	log       *logrus.Logger
	store     *cache.Store
	backend   *gateway.Client
	sessions  *session.Manager
	mutations *mutate.Coordinator
)

var rootCmd = &cobra.Command{
	Use:   "expirytrack",
	Short: "Expirytrack is an offline-first inventory expiry tracker",
	Long: `Expirytrack tracks product expiration dates across retail stores.

It keeps a durable local cache so browsing and mutations keep working when
the backend is unreachable; remote writes that fail are downgraded to local
ones instead of being dropped.`,
	Version:            appVersion,
	PersistentPreRunE:  initApp,
	PersistentPostRunE: closeApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(staffCmd)
}

// initApp loads configuration, opens the cache store, and wires the
// gateway, resolver, session manager, and mutation coordinator.
func initApp(cmd *cobra.Command, args []string) error {
	// Version needs none of the machinery.
	if cmd.Name() == "version" {
		return nil
	}

	log = logging.New(logging.Options{Verbose: flagVerbose, JSON: flagJSON})

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	appConfig = types.Config{
		DataDir:          dataDir,
		BaseURL:          v.GetString(cfgKeyBaseURL),
		RuntimeConfigURL: v.GetString(cfgKeyRuntimeConfigURL),
		RequestTimeout:   time.Duration(v.GetInt(cfgKeyRequestTimeoutSec)) * time.Second,
		LoginTimeout:     time.Duration(v.GetInt(cfgKeyLoginTimeoutSec)) * time.Second,
	}.WithDefaults()
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err = cache.Open(appConfig.DataDir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	baseURL := appConfig.BaseURL
	if baseURL == "" && appConfig.RuntimeConfigURL != "" {
		baseURL = gateway.NewRuntimeConfig(appConfig.RuntimeConfigURL, appConfig.RequestTimeout, log).BaseURL()
	}
	backend = gateway.New(baseURL, appConfig.RequestTimeout, log)

	resolver := auth.NewResolver(backend, log)
	sessions = session.NewManager(store, backend, resolver, log)
	if err := sessions.Start(); err != nil {
		return fmt.Errorf("start session manager: %w", err)
	}

	mutations = mutate.NewCoordinator(sessions, backend, store, confirmPrompt, log)
	return nil
}

// closeApp releases the cache store.
func closeApp(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Close()
	}
	return nil
}
