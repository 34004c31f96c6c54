package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// errRecordExists is returned by add when the name is taken and --replace
// was not given.
var errRecordExists = errors.New("record already exists")

func newAddCmd(a *app) *cobra.Command {
	var (
		phones   []string
		birthday string
		replace  bool
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a record",
		Long: "Add a record with optional phones and birthday (YYYY-MM-DD).\n" +
			"Every value is validated before the book is changed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := types.NewRecord(args[0], birthday)
			if err != nil {
				return err
			}
			for _, p := range phones {
				if err := r.AddPhone(p); err != nil {
					return err
				}
			}
			err = a.mutate(func(book *types.AddressBook) error {
				if _, ok := book.Find(r.Name()); ok && !replace {
					return fmt.Errorf("%w: %s (use --replace)", errRecordExists, r.Name())
				}
				book.Add(r)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Record saved for %s\n", r.Name())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&phones, "phone", nil, "phone number, ten digits (repeatable)")
	cmd.Flags().StringVar(&birthday, "birthday", "", "birthday as YYYY-MM-DD")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace an existing record with the same name")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			err := a.mutate(func(book *types.AddressBook) error {
				return book.Delete(name)
			})
			if errors.Is(err, types.ErrRecordNotFound) {
				return fmt.Errorf("%s is not in the AddressBook: %w", name, types.ErrRecordNotFound)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s has been deleted from the AddressBook\n", name)
			return nil
		},
	}
}

// withRecord loads the book, applies fn to the record stored under name,
// and saves the book when fn succeeds.
func (a *app) withRecord(name string, fn func(*types.Record) error) error {
	return a.mutate(func(book *types.AddressBook) error {
		r, ok := book.Find(name)
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrRecordNotFound, name)
		}
		return fn(r)
	})
}
