package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the burger command tree.
func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "burger",
		Short:         "Burger composition service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serveCmd(&envFile))
	root.AddCommand(receiptCmd())
	root.AddCommand(catalogCmd())
	return root
}
