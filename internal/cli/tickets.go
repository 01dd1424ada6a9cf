package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

const ticketTypeVIP = "VIP"

// notFoundError is a lookup miss in a loaded collection.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) Unwrap() error { return types.ErrRecordNotFound }

func (a *app) newTicketsCmd() *cobra.Command {
	tickets := &cobra.Command{
		Use:   "tickets",
		Short: "Ticket-specific operations",
	}

	vip := &cobra.Command{
		Use:   "vip <id>",
		Short: "Create a VIP copy of a ticket at double price",
		Long: "Vip looks the ticket up in the current collection and creates a new ticket\n" +
			"with the same fields, type VIP and twice the price. VIP tickets are refused.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("Ticket", args[0])
			if err != nil {
				return err
			}
			return a.withRuntime(func(rt *runtime) error {
				m, err := a.manager(rt, types.EntityTickets)
				if err != nil {
					return err
				}
				if err := m.Load(cmd.Context()); err != nil {
					return err
				}
				ticket, ok := m.Find(id)
				if !ok {
					return &notFoundError{msg: fmt.Sprintf("Ticket with ID %d not found", id)}
				}
				copyRec, err := vipCopy(ticket)
				if err != nil {
					return err
				}
				if err := m.Submit(cmd.Context(), types.MutationCreate, 0, copyRec); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created VIP copy of ticket %d (price %s)\n", id, formatValue(copyRec["price"]))
				return nil
			})
		},
	}

	var lf listFlags
	unique := &cobra.Command{
		Use:   "unique-comments",
		Short: "Count distinct non-empty comments among the filtered tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRuntime(func(rt *runtime) error {
				m, err := a.manager(rt, types.EntityTickets)
				if err != nil {
					return err
				}
				if err := m.Load(cmd.Context()); err != nil {
					return err
				}
				if err := lf.apply(m); err != nil {
					return err
				}
				n := m.DistinctCount("comment")
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), map[string]int{"uniqueComments": n})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Total unique comments: %d\n", n)
				return nil
			})
		},
	}
	lf.register(unique)

	tickets.AddCommand(vip, unique)
	return tickets
}

// vipCopy returns the record submitted for a VIP copy of ticket: server
// assigned fields dropped, type VIP and the price doubled.
func vipCopy(ticket types.Record) (types.Record, error) {
	if ticket["type"] == ticketTypeVIP {
		return nil, userInputError("type", "Ticket is already VIP")
	}
	price, ok := types.FloatValue(ticket["price"])
	if !ok {
		return nil, userInputError("price", "Ticket has no numeric price")
	}
	rec := ticket.Clone()
	delete(rec, types.FieldID)
	delete(rec, types.FieldCreatorID)
	delete(rec, "creationDate")
	rec["type"] = ticketTypeVIP
	rec["price"] = price * 2
	return rec, nil
}
