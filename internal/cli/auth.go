package cli

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/apiclient"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/schema"
)

const minPasswordLen = 8

var latinAlnum = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type credentialFlags struct {
	username string
	password string
}

func (c *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.username, "username", "u", "", "account name (Latin letters and digits)")
	cmd.Flags().StringVarP(&c.password, "password", "p", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

// validate checks login and registration input before it is sent.
func (c *credentialFlags) validate() (apiclient.Credentials, error) {
	cred := apiclient.Credentials{Username: strings.TrimSpace(c.username), Password: c.password}
	switch {
	case cred.Username == "":
		return cred, userInputError("username", "Username cannot be empty.")
	case !latinAlnum.MatchString(cred.Username):
		return cred, userInputError("username", "Username may contain only Latin letters and digits.")
	case len(cred.Password) < minPasswordLen:
		return cred, userInputError("password", fmt.Sprintf("Password must be at least %d characters long.", minPasswordLen))
	case !latinAlnum.MatchString(cred.Password):
		return cred, userInputError("password", "Password may contain only Latin letters and digits.")
	}
	return cred, nil
}

func userInputError(field, msg string) error {
	return &schema.ValidationError{Entity: "user", Field: field, Message: msg}
}

func (a *app) newLoginCmd() *cobra.Command {
	var cf credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session token in local storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := cf.validate()
			if err != nil {
				return err
			}
			return a.withRuntime(func(rt *runtime) error {
				tok, err := rt.client.Authenticate(cmd.Context(), cred)
				if err != nil {
					return err
				}
				if err := rt.session.Begin(tok); err != nil {
					return sysErr("%w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", cred.Username)
				return nil
			})
		},
	}
	cf.register(cmd)
	return cmd
}

func (a *app) newRegisterCmd() *cobra.Command {
	var (
		cf    credentialFlags
		admin bool
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Long: "Create an account and log in. With --admin the account requests admin\n" +
			"rights; if an administrator must approve it first, no session is started.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := cf.validate()
			if err != nil {
				return err
			}
			return a.withRuntime(func(rt *runtime) error {
				var (
					tok     string
					pending bool
				)
				if admin {
					tok, pending, err = rt.client.RegisterAdmin(cmd.Context(), cred)
				} else {
					tok, err = rt.client.Register(cmd.Context(), cred)
				}
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if pending {
					fmt.Fprintln(out, "Registration request sent. Wait until an administrator approves it.")
					return nil
				}
				if err := rt.session.Begin(tok); err != nil {
					return sysErr("%w", err)
				}
				fmt.Fprintf(out, "Registered and logged in as %s\n", cred.Username)
				return nil
			})
		},
	}
	cf.register(cmd)
	cmd.Flags().BoolVar(&admin, "admin", false, "request admin rights")
	return cmd
}

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear local storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRuntime(func(rt *runtime) error {
				if err := rt.session.End(); err != nil {
					return sysErr("%w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

// whoami is the account summary shown by the whoami command.
type whoami struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

func (a *app) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRuntime(func(rt *runtime) error {
				if err := rt.session.Require(); err != nil {
					return err
				}
				var w whoami
				g, ctx := errgroup.WithContext(cmd.Context())
				g.Go(func() error { return rt.session.Verify(ctx, rt.client) })
				g.Go(func() error {
					admin, err := rt.client.CheckAdmin(ctx)
					w.Admin = admin
					return err
				})
				g.Go(func() error {
					u, err := rt.client.GetUser(ctx)
					w.ID, w.Username = u.ID, u.Username
					return err
				})
				if err := g.Wait(); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), w)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "username: %s\nid:       %d\nadmin:    %t\n", w.Username, w.ID, w.Admin)
				return nil
			})
		},
	}
}

func (a *app) newUserCmd() *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage the logged-in account",
	}

	var cf credentialFlags
	update := &cobra.Command{
		Use:   "update",
		Short: "Change the username and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cred := apiclient.Credentials{Username: strings.TrimSpace(cf.username), Password: cf.password}
			if cred.Username == "" {
				return userInputError("username", "Username cannot be empty.")
			}
			if len(cred.Password) < minPasswordLen {
				return userInputError("password", fmt.Sprintf("Password must be at least %d characters long.", minPasswordLen))
			}
			return a.withRuntime(func(rt *runtime) error {
				return updateUser(cmd.Context(), cmd, rt, cred)
			})
		},
	}
	cf.register(update)
	user.AddCommand(update)
	return user
}

func updateUser(ctx context.Context, cmd *cobra.Command, rt *runtime, cred apiclient.Credentials) error {
	if err := rt.session.Verify(ctx, rt.client); err != nil {
		return err
	}
	tok, err := rt.client.UpdateUser(ctx, cred)
	if err != nil {
		return err
	}
	if err := rt.session.Renew(tok); err != nil {
		return sysErr("%w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Account renamed to %s\n", cred.Username)
	return nil
}
