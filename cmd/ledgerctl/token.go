package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			issuer, _ := cmd.Flags().GetString("issuer")
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if secret == "" {
				return errors.New("--secret or CL_AUTH_JWT_SECRET is required")
			}

			token, err := auth.NewIssuer(secret, issuer, ttl).Issue(args[0], email, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("secret", envOr("CL_AUTH_JWT_SECRET", ""), "HMAC secret shared with the API")
	cmd.Flags().String("issuer", "credit-ledger", "Token issuer")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")

	return cmd
}
