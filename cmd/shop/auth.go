package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess, err := a.session.Login(context.Background(), loginEmail, loginPassword)
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s (%s)\n", sess.Email, sess.UserID)
		fmt.Printf("export SHOPSYNC_TOKEN=%s\n", sess.Token)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear locally persisted state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		// Best effort even when the token is gone already; the persisted
		// slot must be cleared either way.
		if a.cfg.SessionToken != "" {
			_ = a.requireSession(ctx)
		}
		a.session.Logout(ctx)
		fmt.Println("Signed out; local state cleared. Unset SHOPSYNC_TOKEN.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
