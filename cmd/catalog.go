package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"burger/internal/adapters/out/catalog/yamlcatalog"
	"burger/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	var catalogPath string

	c := &cobra.Command{
		Use:   "catalog",
		Short: "List the available buns and ingredients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := yamlcatalog.NewCatalog(catalogPath)
			if err != nil {
				return err
			}

			handler := queries.NewGetCatalogQueryHandler(catalog, catalog)
			result, err := handler.Handle(cmd.Context(), queries.NewGetCatalogQuery())
			if err != nil {
				return err
			}

			return printCatalog(cmd.OutOrStdout(), result)
		},
	}

	c.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (embedded catalog when omitted)")
	return c
}

func printCatalog(w io.Writer, c *queries.GetCatalogQueryResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BUN\tPRICE")
	for _, b := range c.Buns {
		fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.Price)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TYPE\tINGREDIENT\tPRICE")
	for _, i := range c.Ingredients {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", i.Type, i.Name, i.Price)
	}

	return tw.Flush()
}
