package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/display"
)

// Service command flags.
var (
	serviceName     string
	servicePrice    string
	serviceTime     int
	servicesJSON    bool
	updateCategory  string
	updateName      string
	updatePrice     string
	updateTime      int
)

var servicesCmd = &cobra.Command{
	Use:     "services",
	Aliases: []string{"service"},
	Short:   "List and manage the services of a category",
}

var servicesListCmd = &cobra.Command{
	Use:   "list <category-id>",
	Short: "List the services of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesList,
}

var servicesAddCmd = &cobra.Command{
	Use:   "add <category-id>",
	Short: "Add a service to a category (Admin)",
	Long: `Add a service to a category.

Price must be greater than 0. Time is one of 15, 30, 45, 60, 75, 90, 105
or 120 minutes and defaults to 15.`,
	Args: cobra.ExactArgs(1),
	RunE: runServicesAdd,
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update <service-id>",
	Short: "Replace the fields of a service (Admin)",
	Long: `Update a service. The service is looked up in --category and every
field not given on the command line keeps its current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runServicesUpdate,
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete <service-id>",
	Short: "Delete a service (Admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesDelete,
}

func init() {
	servicesListCmd.Flags().BoolVar(&servicesJSON, "json", false, "Print services as JSON")

	servicesAddCmd.Flags().StringVar(&serviceName, "name", "", "Service name")
	servicesAddCmd.Flags().StringVar(&servicePrice, "price", "", "Price, greater than 0")
	servicesAddCmd.Flags().IntVar(&serviceTime, "time", domain.DefaultDuration, "Duration in minutes")

	servicesUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "Category the service belongs to")
	servicesUpdateCmd.Flags().StringVar(&updateName, "name", "", "New service name")
	servicesUpdateCmd.Flags().StringVar(&updatePrice, "price", "", "New price, greater than 0")
	servicesUpdateCmd.Flags().IntVar(&updateTime, "time", 0, "New duration in minutes")
	_ = servicesUpdateCmd.MarkFlagRequired("category")

	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesUpdateCmd)
	servicesCmd.AddCommand(servicesDeleteCmd)
	rootCmd.AddCommand(servicesCmd)
}

func runServicesList(cmd *cobra.Command, args []string) error {
	if serviceCatalog == nil {
		return errNotConfigured
	}

	services, err := serviceCatalog.List(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if servicesJSON {
		if services == nil {
			services = []domain.Service{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(services)
	}

	printServices(cmd, services)
	return nil
}

func runServicesAdd(cmd *cobra.Command, args []string) error {
	if serviceCatalog == nil {
		return errNotConfigured
	}
	if err := requireManage(); err != nil {
		return err
	}

	draft := domain.NewServiceDraft().
		WithName(serviceName).
		WithPrice(servicePrice).
		WithTime(serviceTime)

	created, err := serviceCatalog.Create(cmd.Context(), args[0], draft)
	if err != nil {
		return alertError(err)
	}

	cmd.Printf("Created service %s: %s\n", created.ID, describe(created))
	return nil
}

func runServicesUpdate(cmd *cobra.Command, args []string) error {
	if serviceCatalog == nil {
		return errNotConfigured
	}
	if err := requireManage(); err != nil {
		return err
	}

	current, err := findService(cmd, updateCategory, args[0])
	if err != nil {
		return err
	}

	session := domain.CheckOut(*current)
	draft := session.Draft
	flags := cmd.Flags()
	if flags.Changed("name") {
		draft = draft.WithName(updateName)
	}
	if flags.Changed("price") {
		draft = draft.WithPrice(updatePrice)
	}
	if flags.Changed("time") {
		draft = draft.WithTime(updateTime)
	}

	updated, err := serviceCatalog.Update(cmd.Context(), session.WithDraft(draft))
	if err != nil {
		return alertError(err)
	}

	cmd.Printf("Updated service %s: %s\n", updated.ID, describe(updated))
	return nil
}

func runServicesDelete(cmd *cobra.Command, args []string) error {
	if serviceCatalog == nil {
		return errNotConfigured
	}
	if err := requireManage(); err != nil {
		return err
	}

	ok, err := activeConfirmer().Confirm("Are you sure you want to delete this service?")
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrDeclined
	}

	if err := serviceCatalog.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	cmd.Printf("Deleted service %s\n", args[0])
	return nil
}

func findService(cmd *cobra.Command, categoryID, serviceID string) (*domain.Service, error) {
	services, err := serviceCatalog.List(cmd.Context(), categoryID)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == serviceID {
			return &services[i], nil
		}
	}
	return nil, fmt.Errorf("service %s in category %s: %w", serviceID, categoryID, domain.ErrNotFound)
}

func describe(s *domain.Service) string {
	return fmt.Sprintf("%s, %s, %s", s.Name, display.Price(s.Price, currency), display.Duration(s.Time))
}

// alertError surfaces validation failures with the same text the page alert uses.
func alertError(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%s: %w", ve.Message(), err)
	}
	return err
}
