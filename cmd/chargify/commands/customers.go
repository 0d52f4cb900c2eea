package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cust"},
		Short:   "Manage customers",
		Long:    "List, view, create, update and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersLookupCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())
	cmd.AddCommand(newCustomersSubscriptionsCommand())

	return cmd
}

// listFlags holds the paging flags shared by list commands.
type listFlags struct {
	page      int
	perPage   int
	direction string
	all       bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&f.direction, "direction", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch every page")
}

func (f *listFlags) params() *chargify.ListParams {
	return &chargify.ListParams{
		Page:      f.page,
		PerPage:   f.perPage,
		Direction: f.direction,
	}
}

func newCustomersListCommand() *cobra.Command {
	var (
		flags listFlags
		query string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			params := flags.params()
			params.Query = query

			ctx := context.Background()

			var customers map[int]chargify.Customer
			if flags.all {
				params.Page = 0
				params.PerPage = 0
				customers, err = client.Customers().ListAll(ctx, params)
			} else {
				customers, err = client.Customers().List(ctx, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return renderCustomers(cmd.OutOrStdout(), sortedValues(customers))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "search by name, email, organization or reference")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), customerID)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderCustomer(cmd.OutOrStdout(), customer)
		},
	}
}

func newCustomersLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup REFERENCE",
		Short: "Find a customer by reference",
		Long:  "Display the customer carrying your own system's reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			customer, err := client.Customers().GetByReference(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to look up customer: %w", err)
			}

			return renderCustomer(cmd.OutOrStdout(), customer)
		},
	}
}

// customerFlags holds the attribute flags of create and update.
type customerFlags struct {
	attrs chargify.CustomerAttributes
}

func (f *customerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.attrs.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.attrs.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.attrs.Email, "email", "", "email address")
	cmd.Flags().StringVar(&f.attrs.CCEmails, "cc-emails", "", "comma separated copy addresses")
	cmd.Flags().StringVar(&f.attrs.Organization, "organization", "", "organization name")
	cmd.Flags().StringVar(&f.attrs.Reference, "reference", "", "your system's reference")
	cmd.Flags().StringVar(&f.attrs.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.attrs.Address, "address", "", "street address")
	cmd.Flags().StringVar(&f.attrs.City, "city", "", "city")
	cmd.Flags().StringVar(&f.attrs.State, "state", "", "state or region")
	cmd.Flags().StringVar(&f.attrs.Zip, "zip", "", "postal code")
	cmd.Flags().StringVar(&f.attrs.Country, "country", "", "ISO country code")
	cmd.Flags().StringVar(&f.attrs.VATNumber, "vat-number", "", "VAT number")
	cmd.Flags().Bool("tax-exempt", false, "exempt the customer from tax")
	cmd.Flags().Int("parent-id", 0, "parent customer ID")
}

func (f *customerFlags) attributes(cmd *cobra.Command) *chargify.CustomerAttributes {
	attrs := f.attrs
	attrs.TaxExempt = optionalBool(cmd, "tax-exempt")
	attrs.ParentID = optionalInt(cmd, "parent-id")

	return &attrs
}

func newCustomersCreateCommand() *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer. First name, last name and email are required.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := flags.attributes(cmd)

			err := attrs.Validate()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), attrs)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderCustomer(cmd.OutOrStdout(), customer)
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Update a customer. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			update := chargify.CustomerUpdate(*flags.attributes(cmd))

			customer, err := client.Customers().Update(context.Background(), customerID, &update)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			return renderCustomer(cmd.OutOrStdout(), customer)
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Delete a customer that has no subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Customers().Delete(context.Background(), customerID)
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted customer %d\n", customerID)

			return nil
		},
	}
}

func newCustomersSubscriptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscriptions CUSTOMER_ID",
		Short: "List a customer's subscriptions",
		Long:  "List every subscription belonging to a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			subscriptions, err := client.Customers().Subscriptions(context.Background(), customerID)
			if err != nil {
				return fmt.Errorf("failed to list customer subscriptions: %w", err)
			}

			return renderSubscriptions(cmd.OutOrStdout(), sortedValues(subscriptions))
		},
	}
}

func renderCustomers(w io.Writer, customers []chargify.Customer) error {
	return renderOutput(w, customers, func(w io.Writer) error {
		if len(customers) == 0 {
			_, _ = fmt.Fprintln(w, "No customers found")

			return nil
		}

		rows := make([][]string, 0, len(customers))
		for _, customer := range customers {
			rows = append(rows, []string{
				strconv.Itoa(customer.ID),
				customer.FirstName + " " + customer.LastName,
				customer.Email,
				orNA(customer.Organization),
				orNA(customer.Reference),
			})
		}

		return renderTable(w, []string{"ID", "Name", "Email", "Organization", "Reference"}, rows)
	})
}

func renderCustomer(w io.Writer, customer *chargify.Customer) error {
	return renderOutput(w, customer, func(w io.Writer) error {
		return renderProperties(w, [][2]string{
			{"ID", strconv.Itoa(customer.ID)},
			{"Name", customer.FirstName + " " + customer.LastName},
			{"Email", customer.Email},
			{"Organization", orNA(customer.Organization)},
			{"Reference", orNA(customer.Reference)},
			{"Phone", orNA(customer.Phone)},
			{"Country", orNA(customer.Country)},
			{"Tax Exempt", strconv.FormatBool(customer.TaxExempt)},
			{"Parent ID", formatOptionalInt(customer.ParentID)},
			{"Created", formatTime(customer.CreatedAt)},
			{"Updated", formatTime(customer.UpdatedAt)},
		})
	})
}
