package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
)

// stubConfirmer answers every prompt with answer and records prompts.
type stubConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (s *stubConfirmer) Confirm(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.answer, s.err
}

// setupTestServices wires the commands to an in-memory catalog seeded with
// category 7 (Haircuts) holding Buzz and Fade, acting as user.
func setupTestServices(t *testing.T, user domain.User) (*memory.Catalog, *memory.ConfigStore) {
	t.Helper()

	api := memory.NewCatalog()
	api.AddCategory(domain.Category{ID: "7", Name: "Haircuts", Image: "haircuts.png"})
	api.AddService(domain.Service{ID: "1", Name: "Buzz", Price: 50, Time: 15, CategoryID: "7"})
	api.AddService(domain.Service{ID: "2", Name: "Fade", Price: 80, Time: 30, CategoryID: "7"})

	store := memory.NewConfigStore()

	oldBootstrap, oldConfirmer := bootstrap, confirmer
	bootstrap = nil
	SetServices(&Services{
		Category: services.NewCategoryService(api),
		Catalog:  services.NewServiceCatalog(api),
		Settings: services.NewSettingsService(store),
		User:     user,
		Currency: "₪",
	})

	t.Cleanup(func() {
		SetServices(nil)
		bootstrap, confirmer = oldBootstrap, oldConfirmer
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return api, store
}

// resetFlags restores every flag in the tree so values and Changed
// state do not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

var (
	admin  = domain.User{Name: "ada", Role: domain.RoleAdmin}
	viewer = domain.User{Name: "vic", Role: "Customer"}
)
