package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewStatementsCommand creates the statements command group
func NewStatementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statements",
		Aliases: []string{"statement"},
		Short:   "View statements",
		Long:    "List and view subscription statements and download them as PDF",
	}

	cmd.AddCommand(newStatementsListCommand())
	cmd.AddCommand(newStatementsGetCommand())
	cmd.AddCommand(newStatementsPDFCommand())

	return cmd
}

func newStatementsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list SUBSCRIPTION_ID",
		Short: "List a subscription's statements",
		Long:  "List the statements of a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], "subscription")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			statements, err := client.Statements().ListForSubscription(context.Background(), subscriptionID, flags.params())
			if err != nil {
				return fmt.Errorf("failed to list statements: %w", err)
			}

			items := sortedValues(statements)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				if len(items) == 0 {
					_, _ = fmt.Fprintln(w, "No statements found")

					return nil
				}

				rows := make([][]string, 0, len(items))
				for _, statement := range items {
					rows = append(rows, []string{
						strconv.Itoa(statement.ID),
						formatTime(statement.OpenedAt),
						formatTime(statement.ClosedAt),
						formatCents(statement.TotalInCents),
						formatCents(statement.EndingBalanceInCents),
					})
				}

				return renderTable(w, []string{"ID", "Opened", "Closed", "Total", "Ending Balance"}, rows)
			})
		},
	}

	flags.register(cmd)
	_ = cmd.Flags().MarkHidden("all")

	return cmd
}

func newStatementsGetCommand() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "get STATEMENT_ID",
		Short: "Get statement details",
		Long:  "Display a statement and its transactions, or its text rendition with --text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statementID, err := parseID(args[0], "statement")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			statement, err := client.Statements().Get(context.Background(), statementID)
			if err != nil {
				return fmt.Errorf("failed to get statement: %w", err)
			}

			if text {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), statement.TextView)

				return nil
			}

			return renderStatement(cmd.OutOrStdout(), statement)
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "print the statement's text view")

	return cmd
}

func newStatementsPDFCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "pdf STATEMENT_ID",
		Short: "Download a statement as PDF",
		Long:  "Download the PDF rendition of a statement to a file or to a redirected stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statementID, err := parseID(args[0], "statement")
			if err != nil {
				return err
			}

			if outFile == "" && cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) { // #nosec G115
				return constants.ErrPDFOutputRequired
			}

			config, err := buildClientConfig(cmd)
			if err != nil {
				return err
			}

			config.Timeout = constants.ExtendedHTTPTimeout

			client, err := newClient(config)
			if err != nil {
				return err
			}

			pdf, err := client.Statements().PDF(context.Background(), statementID)
			if err != nil {
				return fmt.Errorf("failed to download statement PDF: %w", err)
			}

			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(pdf)
				if err != nil {
					return fmt.Errorf("failed to write PDF: %w", err)
				}

				return nil
			}

			err = os.WriteFile(outFile, pdf, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved statement %d to %s (%d bytes)\n", statementID, outFile, len(pdf))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "f", "", "file to write the PDF to")

	return cmd
}

func renderStatement(w io.Writer, statement *chargify.Statement) error {
	return renderOutput(w, statement, func(w io.Writer) error {
		customer := statement.CustomerFirstName + " " + statement.CustomerLastName
		if statement.CustomerOrganization != "" {
			customer += " (" + statement.CustomerOrganization + ")"
		}

		err := renderProperties(w, [][2]string{
			{"ID", strconv.Itoa(statement.ID)},
			{"Subscription ID", strconv.Itoa(statement.SubscriptionID)},
			{"Customer", customer},
			{"Opened", formatTime(statement.OpenedAt)},
			{"Closed", formatTime(statement.ClosedAt)},
			{"Settled", formatTime(statement.SettledAt)},
			{"Starting Balance", formatCents(statement.StartingBalanceInCents)},
			{"Total", formatCents(statement.TotalInCents)},
			{"Ending Balance", formatCents(statement.EndingBalanceInCents)},
		})
		if err != nil {
			return err
		}

		if len(statement.Transactions) == 0 {
			return nil
		}

		_, _ = fmt.Fprintln(w, "\nTransactions:")

		return renderTransactionRows(w, statement.Transactions)
	})
}
