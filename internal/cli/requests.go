package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

func (a *app) newRequestsCmd() *cobra.Command {
	requests := &cobra.Command{
		Use:   "requests",
		Short: "Review pending admin registrations",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List admin registration requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, types.EntityRequests, &lf)
		},
	}
	lf.register(list)

	accept := &cobra.Command{
		Use:   "accept <id>",
		Short: "Approve an admin registration request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("Request", args[0])
			if err != nil {
				return err
			}
			return a.withRuntime(func(rt *runtime) error {
				m, err := a.manager(rt, types.EntityRequests)
				if err != nil {
					return err
				}
				if err := rt.session.Verify(cmd.Context(), rt.client); err != nil {
					return err
				}
				if err := rt.client.AcceptAdminRequest(cmd.Context(), id); err != nil {
					a.reporter.Report(cmd.Context(), err)
					return err
				}
				if err := m.Load(cmd.Context()); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return renderList(cmd.OutOrStdout(), m, true)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Accepted request %d\n", id)
				return renderList(cmd.OutOrStdout(), m, false)
			})
		},
	}

	requests.AddCommand(list, accept)
	return requests
}

// parseID parses a positive record id given on the command line.
func parseID(noun, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, userInputError(types.FieldID, noun+" ID must be a positive whole number")
	}
	return id, nil
}
