package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/payments"
)

func newPaymentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Inspect and test the payment gateway",
	}
	cmd.AddCommand(newPaymentsConfigCmd(opts))
	cmd.AddCommand(newPaymentsTestCmd(opts))
	return cmd
}

func newPaymentsConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the payment gateway configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			api, err := opts.client()
			if err != nil {
				return err
			}
			cfg, raw, err := apiclient.NewPaymentClient(api).GatewayConfig(opts.context(cmd.Context()))
			if err != nil {
				return fmt.Errorf("failed to load gateway configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				fmt.Fprintln(out, payments.PrettyJSON(raw))
				return nil
			}

			tw := newTable(out)
			fmt.Fprintf(tw, "TMN code\t%s\n", yesNo(cfg.TmnCodeExists, cfg.TmnCode))
			fmt.Fprintf(tw, "Hash secret\t%s\n", yesNo(cfg.HashSecretExists, ""))
			fmt.Fprintf(tw, "Pay URL\t%s\n", yesNo(cfg.PayURLExists, cfg.PayURL))
			fmt.Fprintf(tw, "Return URL\t%s\n", yesNo(cfg.ReturnURLExists, cfg.ReturnURL))
			if err := tw.Flush(); err != nil {
				return err
			}

			if cfg.IsValid {
				fmt.Fprintln(out, "Gateway configuration is valid.")
				return nil
			}
			fmt.Fprintln(out, "Gateway configuration is incomplete.")
			if missing := payments.MissingSettings(cfg); len(missing) > 0 {
				fmt.Fprintf(out, "Missing: %s\n", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func yesNo(ok bool, value string) string {
	if !ok {
		return "missing"
	}
	if value == "" {
		return "set"
	}
	return value
}

func newPaymentsTestCmd(opts *options) *cobra.Command {
	payment := payments.DefaultTestPayment()

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Create a test payment through the gateway",
		Long: `Create a test payment through the gateway and print the payment URL.

The gateway configuration is checked first. A token is required.

Examples:
  learnhub-cli payments test --token $TOKEN
  learnhub-cli payments test --course 3 --amount 250000 --info "Course 3"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			if payment.CourseID < 1 || payment.Amount < 10000 || payment.OrderInfo == "" {
				return fmt.Errorf("invalid payment: course must be positive, amount at least 10000 and info not empty")
			}
			api, err := opts.client()
			if err != nil {
				return err
			}
			client := apiclient.NewPaymentClient(api)
			ctx := opts.context(cmd.Context())

			cfg, _, err := client.GatewayConfig(ctx)
			if err != nil {
				return fmt.Errorf("failed to load gateway configuration: %w", err)
			}
			if err := payments.CheckTestPreconditions(opts.token != "", cfg); err != nil {
				return err
			}

			resp, raw, err := client.GatewayCreate(ctx, payment)
			if err != nil {
				return fmt.Errorf("test payment failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				fmt.Fprintln(out, payments.PrettyJSON(raw))
				return nil
			}
			tw := newTable(out)
			fmt.Fprintf(tw, "Success\t%t\n", resp.Success)
			fmt.Fprintf(tw, "Message\t%s\n", resp.Message)
			fmt.Fprintf(tw, "Transaction\t%s\n", resp.TransactionID)
			fmt.Fprintf(tw, "Payment URL\t%s\n", resp.PaymentURL)
			return tw.Flush()
		},
	}

	cmd.Flags().Int64Var(&payment.CourseID, "course", payment.CourseID, "Course ID")
	cmd.Flags().Int64Var(&payment.Amount, "amount", payment.Amount, "Amount in VND")
	cmd.Flags().StringVar(&payment.OrderInfo, "info", payment.OrderInfo, "Order description")
	return cmd
}
