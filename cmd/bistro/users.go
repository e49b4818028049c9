package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users and roles",
	Long: `Manage users and roles.

The API only lets admins change roles, so the first admin is promoted here.`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		users, err := (&service.UserService{Store: db}).ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Name, u.Role)
		}
		return tw.Flush()
	},
}

var usersGrantAdminCmd = &cobra.Command{
	Use:   "grant-admin <email>",
	Short: "Give a user the admin role",
	Long: `Give a user the admin role.

The user must have signed up already. The change applies to their next
request; no new session is needed.

Example:
  bistro users grant-admin owner@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeRole(cmd, args[0], domain.RoleAdmin)
	},
}

var usersRevokeAdminCmd = &cobra.Command{
	Use:   "revoke-admin <email>",
	Short: "Remove the admin role from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeRole(cmd, args[0], "")
	},
}

func changeRole(cmd *cobra.Command, email, role string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := setRoleByEmail(cmd.Context(), &service.UserService{Store: db}, email, role)
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", email)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", email)
	return nil
}

func setRoleByEmail(ctx context.Context, users *service.UserService, email, role string) (int64, error) {
	u, err := users.GetUserByEmail(ctx, email)
	if errors.Is(err, service.ErrUserNotFound) {
		return 0, fmt.Errorf("no user with email %q; they must sign up first", email)
	}
	if err != nil {
		return 0, err
	}

	if role == domain.RoleAdmin {
		return users.GrantAdmin(ctx, u.ID)
	}
	return users.RevokeAdmin(ctx, u.ID)
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersGrantAdminCmd, usersRevokeAdminCmd)
	rootCmd.AddCommand(usersCmd)
}
