// Package cli implements the islab command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	serverURL string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags    rootFlags
	stdout   io.Writer
	stderr   io.Writer
	reporter *stderrReporter
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		reporter: &stderrReporter{w: stderr},
	}
}

// NewRootCmd creates the top-level "islab" command with global flags and
// all subcommands registered. Output goes to stdout, errors and logs to
// stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "islab",
		Short: "Terminal client for the ticket resource API",
		Long: "islab lists, filters, sorts and pages the collections of the resource API\n" +
			"(tickets, locations, events, coordinates, persons, venues) and creates,\n" +
			"updates and deletes their records.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (env ISLAB_CONFIG_DIR)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "local storage directory (env ISLAB_DATA_DIR)")
	root.PersistentFlags().StringVar(&a.flags.serverURL, "server", "", "API server URL (overrides server_url)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log requests at debug level")

	root.AddCommand(
		a.newVersionCmd(),
		a.newInitCmd(),
		a.newLoginCmd(),
		a.newRegisterCmd(),
		a.newLogoutCmd(),
		a.newWhoamiCmd(),
		a.newUserCmd(),
		a.newListCmd(),
		a.newCreateCmd(),
		a.newUpdateCmd(),
		a.newDeleteCmd(),
		a.newFieldsCmd(),
		a.newRequestsCmd(),
		a.newTicketsCmd(),
	)
	return root
}

// Run executes islab with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitSuccess
	}
	if !a.reporter.reported(err) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	if sessionExpired(err) {
		fmt.Fprintln(stderr, "Log in with: islab login --username <name> --password <password>")
	}
	return exitCode(err)
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// systemError marks failures of the local environment (configuration,
// local storage) as opposed to bad input or a server rejection.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) || errors.Is(err, types.ErrTransport) {
		return exitSysError
	}
	return exitUserError
}
