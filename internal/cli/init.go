package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and local storage",
		Long: "Create the configuration directory with a default config.yaml and the data\n" +
			"directory holding local storage. Existing files are left untouched.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	_, configDir, err := a.loadConfig()
	if err != nil {
		return err
	}
	return a.withRuntime(func(rt *runtime) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config: %s\n", filepath.Join(configDir, configFileExt))
		fmt.Fprintf(out, "data:   %s\n", rt.dataDir)
		fmt.Fprintf(out, "server: %s\n", rt.cfg.ServerURL)
		fmt.Fprintln(out, "islab initialized successfully")
		return nil
	})
}
