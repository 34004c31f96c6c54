package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newPhoneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Add, edit, or remove a record's phone numbers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <phone>",
			Short: "Append a phone number",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.withRecord(args[0], func(r *types.Record) error {
					return r.AddPhone(args[1])
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Phone added for %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit <name> <old> <new>",
			Short: "Replace a phone number in place",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.withRecord(args[0], func(r *types.Record) error {
					return r.EditPhone(args[1], args[2])
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Phone number updated for %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <name> <phone>",
			Short: "Remove the first matching phone number",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.withRecord(args[0], func(r *types.Record) error {
					return r.RemovePhone(args[1])
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Phone %s has been deleted\n", args[1])
				return nil
			},
		},
	)
	return cmd
}

func newBirthdayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthday",
		Short: "Set a birthday or count the days to it",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <name> <YYYY-MM-DD>",
			Short: "Set or replace a record's birthday",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.withRecord(args[0], func(r *types.Record) error {
					return r.SetBirthday(args[1])
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Birthday added for %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "days <name>",
			Short: "Count the days until the next birthday",
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
				days, err := r.DaysToBirthday(now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d days before the birthday\n", days)
				return nil
			},
		},
	)
	return cmd
}
