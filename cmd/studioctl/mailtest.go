package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/onamkulam/interiors/internal/config"
	"github.com/onamkulam/interiors/pkg/mailer"
)

func newMailTestCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "mail-test",
		Short: "Send a sample admin notification to EMAIL_TO",
		Long: `Loads the server configuration and sends the admin notification for a
sample enquiry through the configured SMTP relay. Use it to check
EMAIL_USER, EMAIL_PASS and EMAIL_TO before deploying.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.EmailEnabled() {
				return errors.New("email is disabled: EMAIL_USER, EMAIL_PASS and EMAIL_TO must all be set")
			}

			msg, err := mailer.AdminNotification(cfg.EmailTo, mailer.Enquiry{
				Name:    "studioctl",
				Email:   cfg.EmailUser,
				Details: "Test message sent by studioctl mail-test.",
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			m := mailer.NewSMTPMailer(mailer.SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.EmailUser,
				Password: cfg.EmailPass,
				Timeout:  timeout,
			})
			if err := m.Send(ctx, msg); err != nil {
				return fmt.Errorf("send: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %q to %s\n", msg.Subject, msg.To)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "SMTP timeout")
	return cmd
}
