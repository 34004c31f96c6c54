package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/config"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write config.yaml and create an empty address book",
		Long: "Init writes the resolved settings to config.yaml and creates the address book\n" +
			"file if it does not exist. An existing book is never touched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return sysError("resolve config dir", err)
			}
			configPath := config.Path(configDir)
			if _, err := config.WriteFile(configPath, a.cfg, force); err != nil {
				return sysError("write config", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config: %s\n", configPath)

			_, err = os.Stat(a.bookPath)
			switch {
			case err == nil:
				fmt.Fprintf(w, "book: %s (exists)\n", a.bookPath)
			case errors.Is(err, fs.ErrNotExist):
				if err := a.saveBook(types.NewAddressBook()); err != nil {
					return err
				}
				fmt.Fprintf(w, "book: %s (created)\n", a.bookPath)
			default:
				return sysError("stat book", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}
