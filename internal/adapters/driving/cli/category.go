package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/display"
)

var imageOutput string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Inspect catalog categories",
}

var categoryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a category and its services",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryShow,
}

var categoryImageCmd = &cobra.Command{
	Use:   "image <id>",
	Short: "Download a category image",
	Long: `Download the image of a category from the server's uploads.

Writes to the file given by --output, or to the image's own filename.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryImage,
}

func init() {
	categoryImageCmd.Flags().StringVarP(&imageOutput, "output", "o", "", "File to write the image to")

	categoryCmd.AddCommand(categoryShowCmd)
	categoryCmd.AddCommand(categoryImageCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryShow(cmd *cobra.Command, args []string) error {
	if categoryService == nil || serviceCatalog == nil {
		return errNotConfigured
	}

	category, err := categoryService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("category %s: %w", args[0], domain.ErrNotFound)
		}
		return err
	}

	cmd.Println(category.Name)
	if url := categoryService.ImageURL(category); url != "" {
		cmd.Printf("Image: %s\n", url)
	}
	cmd.Println()

	// List failures degrade to an empty list, as on the page.
	services, err := serviceCatalog.List(cmd.Context(), category.ID)
	if err != nil {
		services = nil
	}
	printServices(cmd, services)
	return nil
}

func runCategoryImage(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errNotConfigured
	}

	category, err := categoryService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !category.HasImage() {
		return fmt.Errorf("category %s has no image: %w", category.ID, domain.ErrNotFound)
	}

	data, err := categoryService.Image(cmd.Context(), category)
	if err != nil {
		return err
	}

	path := imageOutput
	if path == "" {
		path = category.Image
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	cmd.Printf("Saved %s (%s)\n", path, display.Bytes(len(data)))
	return nil
}

func printServices(cmd *cobra.Command, services []domain.Service) {
	cmd.Println("Available Services")
	if len(services) == 0 {
		cmd.Println("  No services found for this category.")
		return
	}
	for _, s := range services {
		cmd.Printf("  [%s] %s\n", s.ID, s.Name)
		cmd.Printf("      Price: %s  Time: %s\n", display.Price(s.Price, currency), display.Duration(s.Time))
	}
}
