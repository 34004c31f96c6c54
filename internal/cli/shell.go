package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/shell"
	"github.com/mesh-intelligence/rolodex/internal/store"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

// runShell runs an interactive session over the book on stdin and stdout.
// The session saves the book itself on exit.
func (a *app) runShell(cmd *cobra.Command, _ []string) error {
	book, err := a.loadBook()
	if err != nil {
		return err
	}
	finder, release, err := a.openFinder(book)
	if err != nil {
		return err
	}
	defer release()

	sh := shell.New(book,
		func() error { return store.Save(a.bookPath, book) },
		shell.WithReader(cmd.InOrStdin()),
		shell.WithWriter(cmd.OutOrStdout()),
		shell.WithPageSize(a.cfg.PageSize),
		shell.WithFinder(finder),
	)
	if err := sh.Run(cmd.Context()); err != nil {
		return sysError("shell", err)
	}
	return nil
}
