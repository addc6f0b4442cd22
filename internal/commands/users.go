package commands

import (
	"finsight/internal/dto"

	"github.com/spf13/cobra"
)

func newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersListCommand())

	return cmd
}

func newUsersCreateCommand() *cobra.Command {
	var username string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			req := dto.CreateUserRequest{
				Username: username,
				Email:    email,
				Password: password,
			}
			if err := app.Validator.ValidateStruct(req); err != nil {
				return err
			}

			user, err := app.Users.CreateUser(username, email, password)
			if err != nil {
				return err
			}
			cmd.Printf("created user %s (%s)\n", user.Username, user.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			users, err := app.Users.ListUsers()
			if err != nil {
				return err
			}
			for i := range users {
				cmd.Printf("%s\t%s\t%s\n", users[i].ID, users[i].Username, users[i].Email)
			}
			return nil
		}),
	}
}
