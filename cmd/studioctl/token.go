package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/onamkulam/interiors/internal/config"
	"github.com/onamkulam/interiors/pkg/auth"
)

type tokenEnv struct {
	Secret string `env:"ADMIN_TOKEN_SECRET"`
}

func newAdminTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		secret  string
	)
	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "Mint a bearer token for the admin enquiry endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				var env tokenEnv
				if err := config.ParseEnv(&env); err != nil {
					return err
				}
				secret = env.Secret
			}
			if secret == "" {
				return errors.New("no secret: set ADMIN_TOKEN_SECRET or pass --secret")
			}
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}
			token := auth.CreateAdminToken(subject, time.Now().Add(ttl), auth.SecretBytes(secret))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to ADMIN_TOKEN_SECRET)")
	return cmd
}
