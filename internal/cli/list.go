package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every record in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), book.Records())
			return nil
		},
	}
}

func newPagesCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Show records in pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") {
				size = a.cfg.PageSize
			}
			if err := types.ValidatePageSize(size); err != nil {
				return err
			}
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for n, page := range book.Pages(size) {
				fmt.Fprintf(w, "Page %d\n", n)
				printRecords(w, page)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", types.DefaultPageSize, "records per page (default from config.yaml)")
	return cmd
}
