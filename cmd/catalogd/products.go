package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/horeca-one/catalogd/internal/cli"
	"github.com/horeca-one/catalogd/internal/model"
	"github.com/horeca-one/catalogd/internal/service"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect and maintain catalog products",
	}

	cmd.AddCommand(checkProductsCmd())
	cmd.AddCommand(purgeImportedCmd())

	return cmd
}

func checkProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Summarize catalog contents",
		Long:  `Print product counts (total, imported, visible) and list every imported product.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			hasSKU := true
			noSKU := false

			total, err := store.CountProducts(ctx, service.ProductFilter{})
			if err != nil {
				return fmt.Errorf("failed to count products: %w", err)
			}
			imported, err := store.CountProducts(ctx, service.ProductFilter{HasSKU: &hasSKU})
			if err != nil {
				return fmt.Errorf("failed to count imported products: %w", err)
			}
			seeded, err := store.CountProducts(ctx, service.ProductFilter{HasSKU: &noSKU})
			if err != nil {
				return fmt.Errorf("failed to count seeded products: %w", err)
			}
			visible, err := store.CountProducts(ctx, service.ProductFilter{Status: model.StatusShow})
			if err != nil {
				return fmt.Errorf("failed to count visible products: %w", err)
			}
			hidden, err := store.CountProducts(ctx, service.ProductFilter{Status: model.StatusHide})
			if err != nil {
				return fmt.Errorf("failed to count hidden products: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Product count summary"))
			fmt.Printf("  Total products:       %d\n", total)
			fmt.Printf("  Imported (with SKU):  %d\n", imported)
			fmt.Printf("  Seeded (without SKU): %d\n", seeded)
			fmt.Printf("  Status 'show':        %d\n", visible)
			fmt.Printf("  Status 'hide':        %d\n", hidden)

			products, err := store.ListProducts(ctx, service.ProductFilter{HasSKU: &hasSKU})
			if err != nil {
				return fmt.Errorf("failed to list imported products: %w", err)
			}
			if len(products) == 0 {
				return nil
			}

			labels, err := categoryLabels(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Imported products"))
			for i, p := range products {
				label := labels[p.CategoryID]
				if label == "" {
					label = "N/A"
				}
				fmt.Printf("%d. %s\n", i+1, cli.BoldStyle.Render(p.Name))
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("   SKU: %s | Category: %s | Price: %.2f | Status: %s",
					p.SKU, label, p.Prices.Price, p.Status)))
			}

			return nil
		},
	}
}

// categoryLabels maps category ids to their labels for listing output.
func categoryLabels(ctx context.Context, store service.Storage) (map[string]string, error) {
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	labels := make(map[string]string, len(categories))
	for _, cat := range categories {
		labels[cat.ID] = cat.Label
	}
	return labels, nil
}

func purgeImportedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge-imported",
		Short: "Delete every imported product",
		Long: `Delete all products that carry a SKU, which is every product created by
'catalogd import'. Hand-seeded storefront products have no SKU and are kept.
Use this before re-importing a corrected sheet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			hasSKU := true
			count, err := store.CountProducts(ctx, service.ProductFilter{HasSKU: &hasSKU})
			if err != nil {
				return fmt.Errorf("failed to count imported products: %w", err)
			}
			if count == 0 {
				fmt.Println(cli.InfoStyle.Render("No imported products to delete."))
				return nil
			}

			if !force {
				fmt.Printf("Delete %d imported products? [y/N]: ", count)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			deleted, err := store.DeleteProductsWithSKU(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete imported products: %w", err)
			}

			remaining, err := store.CountProducts(ctx, service.ProductFilter{})
			if err != nil {
				return fmt.Errorf("failed to count remaining products: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted %d products", deleted)))
			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Remaining products: %d", remaining)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
