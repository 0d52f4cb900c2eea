package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/spf13/cobra"
)

// NewTransactionsCommand creates the transactions command group
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txn"},
		Short:   "View transactions",
		Long:    "List and view the transaction ledger of the site or of one subscription",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var (
		flags          listFlags
		subscriptionID int
		kinds          []string
		sinceID        int
		sinceDate      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  "List transactions, optionally for one subscription and filtered by kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &chargify.TransactionListParams{
				ListParams: *flags.params(),
				Kinds:      kinds,
				SinceID:    sinceID,
				SinceDate:  sinceDate,
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var transactions map[int]chargify.Transaction
			if subscriptionID > 0 {
				transactions, err = client.Transactions().ListForSubscription(ctx, subscriptionID, params)
			} else {
				transactions, err = client.Transactions().List(ctx, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			items := sortedValues(transactions)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				if len(items) == 0 {
					_, _ = fmt.Fprintln(w, "No transactions found")

					return nil
				}

				return renderTransactionRows(w, items)
			})
		},
	}

	flags.register(cmd)
	_ = cmd.Flags().MarkHidden("all")
	cmd.Flags().IntVar(&subscriptionID, "subscription", 0, "only transactions of this subscription")
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "transaction kinds (charge, payment, credit, refund, adjustment, info)")
	cmd.Flags().IntVar(&sinceID, "since-id", 0, "only transactions with a greater ID")
	cmd.Flags().StringVar(&sinceDate, "since-date", "", "only transactions on or after this date (YYYY-MM-DD)")

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction details",
		Long:  "Display detailed information about a specific transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Get(context.Background(), transactionID)
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), transaction, func(w io.Writer) error {
				return renderProperties(w, [][2]string{
					{"ID", strconv.Itoa(transaction.ID)},
					{"Type", orNA(string(transaction.TransactionType))},
					{"Kind", orNA(transaction.Kind)},
					{"Amount", formatCents(transaction.AmountInCents)},
					{"Starting Balance", formatCents(transaction.StartingBalanceInCents)},
					{"Ending Balance", formatCents(transaction.EndingBalanceInCents)},
					{"Memo", orNA(truncate(transaction.Memo))},
					{"Subscription ID", strconv.Itoa(transaction.SubscriptionID)},
					{"Customer ID", strconv.Itoa(transaction.CustomerID)},
					{"Payment ID", formatOptionalInt(transaction.PaymentID)},
					{"Statement ID", formatOptionalInt(transaction.StatementID)},
					{"Success", strconv.FormatBool(transaction.Success)},
					{"Gateway ID", orNA(transaction.GatewayTransactionID)},
					{"Created", formatTime(transaction.CreatedAt)},
				})
			})
		},
	}
}

func renderTransactionRows(w io.Writer, transactions []chargify.Transaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, []string{
			strconv.Itoa(transaction.ID),
			string(transaction.TransactionType),
			formatCents(transaction.AmountInCents),
			formatCents(transaction.EndingBalanceInCents),
			truncate(transaction.Memo),
			formatTime(transaction.CreatedAt),
		})
	}

	return renderTable(w, []string{"ID", "Type", "Amount", "Ending Balance", "Memo", "Created"}, rows)
}
