// Package cli implements the rolodex command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/config"
	"github.com/mesh-intelligence/rolodex/internal/logging"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// ExitError carries the exit code a failed command should end with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// sysError marks err as an environment failure (files, config, index)
// rather than bad user input.
func sysError(msg string, err error) error {
	return &ExitError{Code: exitSysError, Err: fmt.Errorf("%s: %w", msg, err)}
}

// ExitCode maps err to a process exit code. Errors not marked by sysError
// are user errors.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	index     string
	verbose   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags    rootFlags
	cfg      types.Config
	bookPath string
}

// NewRootCmd creates the top-level "rolodex" command with global flags and
// all subcommands registered. Run without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rolodex",
		Short: "A personal address book",
		Long: "Rolodex keeps named contacts with phone numbers and birthdays in a JSON file.\n" +
			"Run it without a command for the interactive menu.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runShell,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "directory holding the address book (default: current directory)")
	root.PersistentFlags().StringVar(&a.flags.index, "index", "", "search index: memory or sqlite (default from config.yaml)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newShellCmd(a),
		newListCmd(a),
		newPagesCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newFindPhoneCmd(a),
		newAddCmd(a),
		newPhoneCmd(a),
		newBirthdayCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rolodex:", err)
		os.Exit(ExitCode(err))
	}
}

// setup loads config.yaml, applies flag overrides, and installs logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir", err)
	}
	v, err := config.Load(configDir)
	if err != nil {
		return sysError("load config", err)
	}
	if a.flags.index != "" {
		v.Set(config.KeyIndex, a.flags.index)
	}
	if a.flags.verbose {
		v.Set(config.KeyLogLevel, "debug")
	}
	cfg, err := config.Resolve(v, a.flags.dataDir)
	if err != nil {
		return sysError("config", err)
	}
	a.cfg = cfg
	a.bookPath = paths.BookPath(cfg.DataDir, cfg.BookFile)

	logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

func printRecords(w io.Writer, records []*types.Record) {
	for _, r := range records {
		fmt.Fprintln(w, r)
	}
}
