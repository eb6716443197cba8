package cmd

import (
	"fmt"
	"io"

	"burger/internal/adapters/out/catalog/yamlcatalog"
	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func receiptCmd() *cobra.Command {
	var catalogPath string
	var bunName string
	var ingredientNames []string

	c := &cobra.Command{
		Use:   "receipt",
		Short: "Compose a burger from the catalog and print its receipt",
		Example: `  burger receipt --bun "black bun" --ingredient "hot sauce" --ingredient cutlet
  burger receipt --catalog ./catalog.yaml --bun "red bun"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := yamlcatalog.NewCatalog(catalogPath)
			if err != nil {
				return err
			}

			b, err := burger.NewBurger(kernel.NewUUID())
			if err != nil {
				return err
			}

			bn, err := catalog.FindBun(cmd.Context(), bunName)
			if err != nil {
				return err
			}
			if err = b.SetBuns(bn); err != nil {
				return err
			}

			for _, name := range ingredientNames {
				i, err := catalog.FindIngredient(cmd.Context(), name)
				if err != nil {
					return err
				}
				if err = b.AddIngredient(i); err != nil {
					return err
				}
			}

			return printReceipt(cmd.OutOrStdout(), b)
		},
	}

	c.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (embedded catalog when omitted)")
	c.Flags().StringVarP(&bunName, "bun", "b", "", "Bun name (required)")
	c.Flags().StringArrayVarP(&ingredientNames, "ingredient", "i", nil, "Ingredient name, bottom to top; repeatable")

	_ = c.MarkFlagRequired("bun")
	return c
}

func printReceipt(w io.Writer, b *burger.Burger) error {
	receipt, err := b.Receipt()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, receipt)
	return err
}
