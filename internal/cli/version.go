package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/ArturMukhamedjanov/is-lab1-front"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0-dev"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the islab version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "islab v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
