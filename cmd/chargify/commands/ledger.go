package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ledgerAmount carries the flags common to every ledger entry.
type ledgerAmount struct {
	Amount        *decimal.Decimal
	AmountInCents *int64
	Memo          string
}

// LedgerCommandConfig describes a command group that posts one kind of
// ledger entry to a subscription.
type LedgerCommandConfig struct {
	Use     string
	Aliases []string
	Noun    string
	Short   string
	Long    string
	// AddFlags registers flags beyond amount and memo.
	AddFlags func(cmd *cobra.Command)
	// Create posts the entry and returns it with its shared ledger fields.
	Create func(ctx context.Context, client chargify.Client, cmd *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error)
}

// createLedgerCommand creates a command group with a single create subcommand.
func createLedgerCommand(config LedgerCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.Use,
		Aliases: config.Aliases,
		Short:   config.Short,
		Long:    config.Long,
	}

	cmd.AddCommand(createLedgerCreateCommand(config))

	return cmd
}

func createLedgerCreateCommand(config LedgerCommandConfig) *cobra.Command {
	var (
		amounts amountFlags
		memo    string
	)

	cmd := &cobra.Command{
		Use:   "create SUBSCRIPTION_ID",
		Short: "Create a " + config.Noun,
		Long:  fmt.Sprintf("Post a %s to a subscription. Give the amount with --amount or --amount-in-cents.", config.Noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], "subscription")
			if err != nil {
				return err
			}

			amount, cents, err := amounts.resolve(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			result, entry, err := config.Create(context.Background(), client, cmd, subscriptionID, ledgerAmount{
				Amount:        amount,
				AmountInCents: cents,
				Memo:          memo,
			})
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", config.Noun, err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return renderLedgerEntry(w, entry)
			})
		},
	}

	amounts.register(cmd)
	cmd.Flags().StringVar(&memo, "memo", "", "memo shown on the statement")

	if config.AddFlags != nil {
		config.AddFlags(cmd)
	}

	return cmd
}

// NewChargesCommand creates the charges command group
func NewChargesCommand() *cobra.Command {
	return createLedgerCommand(LedgerCommandConfig{
		Use:     "charges",
		Aliases: []string{"charge"},
		Noun:    "charge",
		Short:   "Post one-time charges",
		Long:    "Post one-time charges to a subscription's balance",
		AddFlags: func(cmd *cobra.Command) {
			cmd.Flags().Bool("delay-capture", false, "add the charge to the balance without capturing payment")
			cmd.Flags().Bool("taxable", false, "apply tax to the charge")
		},
		Create: func(ctx context.Context, client chargify.Client, cmd *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error) {
			charge, err := client.Charges().Create(ctx, subscriptionID, &chargify.ChargeRequest{
				Amount:        amount.Amount,
				AmountInCents: amount.AmountInCents,
				Memo:          amount.Memo,
				DelayCapture:  optionalBool(cmd, "delay-capture"),
				Taxable:       optionalBool(cmd, "taxable"),
			})
			if err != nil {
				return nil, nil, err
			}

			return charge, &charge.LedgerEntry, nil
		},
	})
}

// NewCreditsCommand creates the credits command group
func NewCreditsCommand() *cobra.Command {
	return createLedgerCommand(LedgerCommandConfig{
		Use:     "credits",
		Aliases: []string{"credit"},
		Noun:    "credit",
		Short:   "Post one-time credits",
		Long:    "Post one-time credits to a subscription's balance",
		Create: func(ctx context.Context, client chargify.Client, _ *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error) {
			credit, err := client.Credits().Create(ctx, subscriptionID, &chargify.CreditRequest{
				Amount:        amount.Amount,
				AmountInCents: amount.AmountInCents,
				Memo:          amount.Memo,
			})
			if err != nil {
				return nil, nil, err
			}

			return credit, &credit.LedgerEntry, nil
		},
	})
}

// NewRefundsCommand creates the refunds command group
func NewRefundsCommand() *cobra.Command {
	return createLedgerCommand(LedgerCommandConfig{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Noun:    "refund",
		Short:   "Refund payments",
		Long:    "Refund all or part of a payment made on a subscription",
		AddFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int("payment-id", 0, "ID of the payment to refund")
			_ = cmd.MarkFlagRequired("payment-id")
		},
		Create: func(ctx context.Context, client chargify.Client, cmd *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error) {
			paymentID, err := cmd.Flags().GetInt("payment-id")
			if err != nil {
				return nil, nil, err
			}

			refund, err := client.Refunds().Create(ctx, subscriptionID, &chargify.RefundRequest{
				PaymentID:     paymentID,
				Amount:        amount.Amount,
				AmountInCents: amount.AmountInCents,
				Memo:          amount.Memo,
			})
			if err != nil {
				return nil, nil, err
			}

			return refund, &refund.LedgerEntry, nil
		},
	})
}

// NewAdjustmentsCommand creates the adjustments command group
func NewAdjustmentsCommand() *cobra.Command {
	return createLedgerCommand(LedgerCommandConfig{
		Use:     "adjustments",
		Aliases: []string{"adjustment", "adjust"},
		Noun:    "adjustment",
		Short:   "Adjust balances",
		Long:    "Adjust a subscription's balance by an amount, or to a target with --method target",
		AddFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("method", "", "adjustment method (target to set the balance to the amount)")
		},
		Create: func(ctx context.Context, client chargify.Client, cmd *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error) {
			method, err := cmd.Flags().GetString("method")
			if err != nil {
				return nil, nil, err
			}

			adjustment, err := client.Adjustments().Create(ctx, subscriptionID, &chargify.AdjustmentRequest{
				Amount:           amount.Amount,
				AmountInCents:    amount.AmountInCents,
				Memo:             amount.Memo,
				AdjustmentMethod: method,
			})
			if err != nil {
				return nil, nil, err
			}

			return adjustment, &adjustment.LedgerEntry, nil
		},
	})
}

// NewPaymentsCommand creates the payments command group
func NewPaymentsCommand() *cobra.Command {
	return createLedgerCommand(LedgerCommandConfig{
		Use:     "payments",
		Aliases: []string{"payment"},
		Noun:    "payment",
		Short:   "Record external payments",
		Long:    "Record payments received outside the payment gateway",
		Create: func(ctx context.Context, client chargify.Client, _ *cobra.Command, subscriptionID int, amount ledgerAmount) (any, *chargify.LedgerEntry, error) {
			payment, err := client.Payments().Create(ctx, subscriptionID, &chargify.PaymentRequest{
				Amount:        amount.Amount,
				AmountInCents: amount.AmountInCents,
				Memo:          amount.Memo,
			})
			if err != nil {
				return nil, nil, err
			}

			return payment, &payment.LedgerEntry, nil
		},
	})
}

func renderLedgerEntry(w io.Writer, entry *chargify.LedgerEntry) error {
	return renderProperties(w, [][2]string{
		{"ID", strconv.Itoa(entry.ID)},
		{"Subscription ID", strconv.Itoa(entry.SubscriptionID)},
		{"Amount", formatCents(entry.AmountInCents)},
		{"Ending Balance", formatCents(entry.EndingBalanceInCents)},
		{"Memo", orNA(truncate(entry.Memo))},
		{"Success", strconv.FormatBool(entry.Success)},
		{"Created", formatTime(entry.CreatedAt)},
	})
}
