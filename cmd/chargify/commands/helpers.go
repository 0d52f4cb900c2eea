package commands

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// JSON formatting.
	defaultJSONIndent = 2

	// Date layout used in tables.
	tableTimeLayout = "2006-01-02 15:04:05"

	// Cell values longer than this are cut in tables.
	maxCellWidth = 40
)

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutput, output)
	}
}

// renderOutput writes data as JSON or YAML, or calls table for table output.
func renderOutput(w io.Writer, data any, table func(w io.Writer) error) error {
	output, err := outputFormat()
	if err != nil {
		return err
	}

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	default:
		return table(w)
	}
}

// renderTable renders rows under header.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toCells(header)...)

	for _, row := range rows {
		err := table.Append(toCells(row)...)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties renders a two column Property/Value table.
func renderProperties(w io.Writer, properties [][2]string) error {
	rows := make([][]string, 0, len(properties))
	for _, property := range properties {
		rows = append(rows, []string{property[0], property[1]})
	}

	return renderTable(w, []string{"Property", "Value"}, rows)
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

// sortedValues returns the map values ordered by key.
func sortedValues[K cmp.Ordered, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		values = append(values, m[key])
	}

	return values
}

// parseID parses a positive numeric resource ID.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w for %s: %q", constants.ErrInvalidID, what, arg)
	}

	return id, nil
}

// formatCents renders an amount in cents as a decimal currency amount.
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// formatOptionalCents renders nil as N/A.
func formatOptionalCents(cents *int64) string {
	if cents == nil {
		return constants.NotAvailable
	}

	return formatCents(*cents)
}

// formatTime renders the zero time as N/A.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(tableTimeLayout)
}

// formatOptionalInt renders nil as N/A.
func formatOptionalInt(value *int) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*value)
}

// orNA renders an empty string as N/A.
func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// truncate cuts long cell values.
func truncate(value string) string {
	if len(value) > maxCellWidth {
		return value[:maxCellWidth-3] + "..."
	}

	return value
}

// amountFlags holds the --amount and --amount-in-cents flags shared by ledger
// commands.
type amountFlags struct {
	amount        string
	amountInCents int64
}

func (f *amountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount in the site currency (e.g. 10.50)")
	cmd.Flags().Int64Var(&f.amountInCents, "amount-in-cents", 0, "amount in cents")
}

// resolve returns exactly one of the decimal amount or the cents amount.
func (f *amountFlags) resolve(cmd *cobra.Command) (*decimal.Decimal, *int64, error) {
	amountSet := cmd.Flags().Changed("amount")
	centsSet := cmd.Flags().Changed("amount-in-cents")

	switch {
	case amountSet && centsSet, !amountSet && !centsSet:
		return nil, nil, constants.ErrAmountRequired
	case centsSet:
		cents := f.amountInCents

		return nil, &cents, nil
	default:
		amount, err := decimal.NewFromString(f.amount)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", constants.ErrInvalidAmount, f.amount)
		}

		return &amount, nil, nil
	}
}

// optionalBool returns a pointer to the flag value when it was set.
func optionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}

	return &value
}

// optionalInt returns a pointer to the flag value when it was set.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}

	return &value
}
