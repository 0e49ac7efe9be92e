package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/horeca-one/catalogd/internal/catalog"
	"github.com/horeca-one/catalogd/internal/cli"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [sheet file]",
		Short: "Import products from a wholesale price sheet",
		Long: `Import products from the comma-delimited price sheet exported by the
wholesale desk. Rows already in the catalog (matching SKU or a near-identical
name) are skipped, new categories are created with the next display order,
and bulk/promo pricing tiers are derived from each gross rate.

Examples:
  # Import a sheet
  catalogd import "6to9 Items & Categories - Products.csv"

  # Preview without writing anything
  catalogd import --dry-run products.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", args[0], err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	importer := catalog.NewImporter(store, catalog.Config{
		DryRun:         dryRun,
		ProgressWriter: os.Stderr,
	})

	summary, err := importer.Run(ctx, string(content))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printSummary(summary, dryRun)
	return nil
}

func printSummary(summary *catalog.Summary, dryRun bool) {
	title := "Import complete"
	if dryRun {
		title = "Import preview (nothing saved)"
	}

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(title))
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("  Added:    %d products", summary.Added)))
	fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  Skipped:  %d products", summary.TotalSkipped())))

	for _, reason := range []struct {
		key   catalog.SkipReason
		label string
	}{
		{catalog.SkipDuplicateSKU, "duplicate SKU"},
		{catalog.SkipDuplicateName, "duplicate name"},
		{catalog.SkipNoCategory, "no category"},
		{catalog.SkipStoreError, "store error"},
	} {
		if n := summary.Skipped[reason.key]; n > 0 {
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("    %-15s %d", reason.label, n)))
		}
	}

	fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("  Categories: %d touched, %d created",
		summary.CategoriesTouched, summary.CategoriesCreated)))
}
