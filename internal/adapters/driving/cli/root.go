// Package cli provides the cobra command tree for the catalog client.
// It is a driving adapter: commands translate flags and arguments into
// calls on the driving ports and print the results.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flag values handed to the bootstrap hook.
type Options struct {
	ConfigDir string
	APIURL    string
	Verbose   bool
}

// Services bundles everything commands need once configuration is resolved.
type Services struct {
	Category driving.CategoryService
	Catalog  driving.ServiceCatalog
	Settings driving.SettingsService
	User     domain.User
	Currency string
	LogFile  string
}

// Bootstrap builds Services from global options. It runs before every command.
type Bootstrap func(opts Options) (*Services, error)

var (
	categoryService driving.CategoryService
	serviceCatalog  driving.ServiceCatalog
	settingsService driving.SettingsService
	currentUser     domain.User
	currency        = domain.DefaultCurrency
	logFile         string

	bootstrap Bootstrap
	confirmer Confirmer = NewStdinConfirmer()
)

// Global flags.
var (
	verboseFlag   bool
	configDirFlag string
	apiURLFlag    string
	roleFlag      string
	yesFlag       bool
)

var errNotConfigured = errors.New("catalog client not configured")

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and manage catalog categories",
	Long: `catalog is a terminal client for a service catalog.

Open a category page to see the services it offers, book one, or, with the
Admin role, add, edit and delete services. Every page action is also
available as a plain command for scripting.`,
	SilenceUsage:      true,
	PersistentPreRunE: configure,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Config directory (default ~/.catalog)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Catalog API base URL")
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "", "Act with this user role (e.g. Admin)")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmation prompts")
}

// SetBootstrap installs the hook that wires services from configuration.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices injects services directly, bypassing the bootstrap hook.
func SetServices(s *Services) {
	if s == nil {
		categoryService, serviceCatalog, settingsService = nil, nil, nil
		currentUser = domain.User{}
		currency = domain.DefaultCurrency
		logFile = ""
		return
	}
	categoryService = s.Category
	serviceCatalog = s.Catalog
	settingsService = s.Settings
	currentUser = s.User
	currency = s.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	logFile = s.LogFile
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func configure(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if bootstrap != nil {
		s, err := bootstrap(Options{
			ConfigDir: configDirFlag,
			APIURL:    apiURLFlag,
			Verbose:   verboseFlag,
		})
		if err != nil {
			return err
		}
		SetServices(s)
	}

	if roleFlag != "" {
		currentUser.Role = roleFlag
	}
	logger.Debug("acting as %q with role %q", currentUser.Name, currentUser.Role)
	return nil
}

// requireManage rejects mutations for users without the admin capability.
func requireManage() error {
	if !currentUser.CanManageServices() {
		return domain.ErrForbidden
	}
	return nil
}
