package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find records whose name or a phone contains query",
		Long: "Search matches query as a case-sensitive substring of names and phone numbers.\n" +
			"A record is listed once for a name match and once per matching phone.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			finder, release, err := a.openFinder(book)
			if err != nil {
				return err
			}
			defer release()

			found, err := finder.Search(args[0])
			if err != nil {
				return finderError("search", err)
			}
			w := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(w, "This data is not found.")
				return nil
			}
			fmt.Fprintln(w, "Found users:")
			for _, r := range found {
				printDetail(w, r)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			r, ok := book.Find(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", types.ErrRecordNotFound, args[0])
			}
			printDetail(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newFindPhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find-phone <phone>",
		Short: "Show who owns an exact phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			finder, release, err := a.openFinder(book)
			if err != nil {
				return err
			}
			defer release()

			name, err := finder.FindByPhone(args[0])
			if err != nil {
				return finderError("find phone", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s belongs to %s\n", args[0], name)
			return nil
		},
	}
}

// printDetail writes the Name / Phones / Birthday block for r.
func printDetail(w io.Writer, r *types.Record) {
	s := r.Snapshot()
	fmt.Fprintf(w, "Name: %s\n", s.Name)
	fmt.Fprintf(w, "Phones: %s\n", strings.Join(s.Phones, ", "))
	fmt.Fprintf(w, "Birthday: %s\n", s.Birthday)
}
