package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// ErrNoTerminal is returned when the TUI is started without a terminal on stdout.
var ErrNoTerminal = errors.New("the interactive UI needs a terminal; use the category and services commands instead")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:     "tui [category-id]",
	Aliases: []string{"open"},
	Short:   "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

With a category id the page of that category opens directly; otherwise
the catalog menu asks for one.

Controls:
  ↑/k, ↓/j  - Navigate services
  Enter     - Make an appointment
  Esc/b     - Back to the main page
  a         - Add service (Admin)
  e, d      - Edit, delete the selected service (Admin)
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if categoryService == nil || serviceCatalog == nil {
		return errNotConfigured
	}
	if !isTerminal() {
		return ErrNoTerminal
	}

	// Keep log lines off the screen while the UI owns it.
	if logFile != "" {
		restore, ferr := logger.ToFile(logFile)
		if ferr != nil {
			return ferr
		}
		defer restore()
	}

	ports := tui.NewPorts(categoryService, serviceCatalog, settingsService)
	app, err := tui.NewApp(ports, currentUser, currency)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if len(args) == 1 {
		app.WithCategory(args[0])
	}

	logger.Section("tui")
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
