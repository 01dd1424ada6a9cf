package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/listmanager"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/schema"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

var entityHelp = "Valid entities: " + strings.Join(types.StandardEntityNames, ", ")

// listFlags selects the view of a list: filters, sort toggles and page.
type listFlags struct {
	filters []string
	sorts   []string
	page    int
}

func (l *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&l.filters, "filter", "f", nil, "filter as key=value; repeatable, filters are ANDed")
	cmd.Flags().StringArrayVarP(&l.sorts, "sort", "s", nil, "sort by field; repeating a field toggles ascending/descending")
	cmd.Flags().IntVar(&l.page, "page", 1, "page to show (1-based)")
}

// apply sets filters, sorts and page on m in that order.
func (l *listFlags) apply(m *listmanager.Manager) error {
	filters, err := parseAssignments(l.filters)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(filters) {
		if err := m.SetFilter(key, filters[key]); err != nil {
			return err
		}
	}
	for _, key := range l.sorts {
		if err := m.SetSort(key); err != nil {
			return err
		}
	}
	m.SetPage(l.page)
	return nil
}

// parseAssignments turns key=value arguments into a map. Later keys win.
func parseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q (expected key=value)", arg)
		}
		out[key] = value
	}
	return out, nil
}

func (a *app) newListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "List a collection with optional filters, sorting and paging",
		Long: `List fetches the whole collection and shows one page of it.

Filters are key=value pairs on the filterable fields (see "islab fields").
Identifier and numeric fields match exactly; text fields match a
case-insensitive substring. Sorting a field twice sorts it descending.

` + entityHelp + `

Example:
  islab list tickets
  islab list tickets --filter name=derby --sort price --page 2
  islab list coordinates --filter id=7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, args[0], &lf)
		},
	}
	lf.register(cmd)
	return cmd
}

func (a *app) runList(cmd *cobra.Command, entity string, lf *listFlags) error {
	if _, err := schema.For(entity); err != nil {
		return err
	}
	return a.withRuntime(func(rt *runtime) error {
		m, err := a.manager(rt, entity)
		if err != nil {
			return err
		}
		if err := m.Load(cmd.Context()); err != nil {
			return err
		}
		if err := lf.apply(m); err != nil {
			return err
		}
		return renderList(cmd.OutOrStdout(), m, a.flags.jsonMode)
	})
}

func (a *app) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <entity> key=value...",
		Short: "Create a record",
		Long: `Create validates the fields locally and submits the record. Fields left out
are sent as null; required fields must be present.

` + entityHelp + `

Example:
  islab create coordinates x=10.5 y=3
  islab create venues name="Main hall" capacity=300 type=THEATRE`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			if _, ok := payload[types.FieldID]; ok {
				return userInputError(types.FieldID, "ID is assigned by the server")
			}
			return a.mutate(cmd, args[0], types.MutationCreate, payload, "Created")
		},
	}
}

func (a *app) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <entity> <id> key=value...",
		Short: "Replace a record",
		Long: `Update replaces every writable field of the record, so pass all required
fields, not only the changed ones.

` + entityHelp,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseAssignments(args[2:])
			if err != nil {
				return err
			}
			payload[types.FieldID] = args[1]
			return a.mutate(cmd, args[0], types.MutationUpdate, payload, "Updated")
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, args[0], types.MutationDelete, map[string]string{types.FieldID: args[1]}, "Deleted")
		},
	}
}

// mutate runs one mutation through the list manager, which validates it,
// sends it and reloads the collection.
func (a *app) mutate(cmd *cobra.Command, entity string, kind types.MutationKind, payload map[string]string, verb string) error {
	s, err := schema.For(entity)
	if err != nil {
		return err
	}
	return a.withRuntime(func(rt *runtime) error {
		m, err := a.manager(rt, entity)
		if err != nil {
			return err
		}
		if err := m.Mutate(cmd.Context(), kind, payload); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if a.flags.jsonMode {
			return renderList(out, m, true)
		}
		noun := strings.ToLower(s.Singular)
		if id := payload[types.FieldID]; id != "" {
			fmt.Fprintf(out, "%s %s %s (%d records)\n", verb, noun, id, len(m.Source()))
		} else {
			fmt.Fprintf(out, "%s %s (%d records)\n", verb, noun, len(m.Source()))
		}
		return nil
	})
}

func (a *app) newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <entity>",
		Short: "Show the fields of an entity and their constraints",
		Long:  "Fields lists the columns of an entity: kind, whether it can be filtered and\nthe rules applied on create and update.\n\n" + entityHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.For(args[0])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), s.Fields)
			}
			return renderFields(cmd.OutOrStdout(), s)
		},
	}
}
