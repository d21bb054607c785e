package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "catalog", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "api-url", "role", "yes"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"category", "services", "config", "tui", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestBootstrap_ReceivesFlags(t *testing.T) {
	setupTestServices(t, viewer)
	defer logger.SetVerbose(false)

	api := memory.NewCatalog()
	api.AddCategory(domain.Category{ID: "3", Name: "Nails"})

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{
			Category: services.NewCategoryService(api),
			Catalog:  services.NewServiceCatalog(api),
			User:     domain.User{Name: "boot"},
		}, nil
	})

	out, err := run(t, "--config-dir", "/tmp/cfg", "--api-url", "http://api:9000", "-v", "category", "show", "3")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/cfg", APIURL: "http://api:9000", Verbose: true}, got)
	assert.Contains(t, out, "Nails")
	assert.Equal(t, "boot", currentUser.Name)
	assert.Equal(t, domain.DefaultCurrency, currency)
}

func TestBootstrap_Error(t *testing.T) {
	setupTestServices(t, viewer)
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("bad config")
	})

	_, err := run(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad config")
}

func TestRoleFlag_OverridesUser(t *testing.T) {
	setupTestServices(t, viewer)

	_, err := run(t, "--role", "Admin", "version")

	require.NoError(t, err)
	assert.True(t, currentUser.CanManageServices())
	assert.Equal(t, "vic", currentUser.Name)
}

func TestRequireManage(t *testing.T) {
	setupTestServices(t, viewer)
	assert.ErrorIs(t, requireManage(), domain.ErrForbidden)

	SetServices(&Services{User: admin})
	assert.NoError(t, requireManage())
}
