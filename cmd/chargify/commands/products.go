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

// NewProductsCommand creates the products command group
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "View products",
		Long:    "View products, product families and their components",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsFamiliesCommand())
	cmd.AddCommand(newProductsComponentsCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List every product of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			products, err := client.Products().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			items := sortedValues(products)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				if len(items) == 0 {
					_, _ = fmt.Fprintln(w, "No products found")

					return nil
				}

				rows := make([][]string, 0, len(items))
				for _, product := range items {
					rows = append(rows, []string{
						strconv.Itoa(product.ID),
						product.Handle,
						product.Name,
						formatCents(product.PriceInCents),
						formatInterval(product.Interval, product.IntervalUnit),
						orNA(product.ProductFamily.Name),
					})
				}

				return renderTable(w, []string{"ID", "Handle", "Name", "Price", "Interval", "Family"}, rows)
			})
		},
	}
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID_OR_HANDLE",
		Short: "Get product details",
		Long:  "Display a product selected by numeric ID or by handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var product *chargify.Product

			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				product, err = client.Products().Get(ctx, id)
			} else {
				product, err = client.Products().GetByHandle(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), product, func(w io.Writer) error {
				return renderProperties(w, [][2]string{
					{"ID", strconv.Itoa(product.ID)},
					{"Name", product.Name},
					{"Handle", product.Handle},
					{"Description", orNA(truncate(product.Description))},
					{"Price", formatCents(product.PriceInCents)},
					{"Interval", formatInterval(product.Interval, product.IntervalUnit)},
					{"Initial Charge", formatOptionalCents(product.InitialChargeInCents)},
					{"Trial Price", formatOptionalCents(product.TrialPriceInCents)},
					{"Trial Interval", formatOptionalInterval(product.TrialInterval, product.TrialIntervalUnit)},
					{"Requires Card", strconv.FormatBool(product.RequireCreditCard)},
					{"Family", orNA(product.ProductFamily.Name)},
					{"Signup Pages", strconv.Itoa(len(product.PublicSignupPages))},
					{"Archived", formatTime(product.ArchivedAt)},
				})
			})
		},
	}
}

func newProductsFamiliesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "families",
		Aliases: []string{"family"},
		Short:   "List product families",
		Long:    "List every product family of the site",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			families, err := client.ProductFamilies().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list product families: %w", err)
			}

			items := sortedValues(families)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				rows := make([][]string, 0, len(items))
				for _, family := range items {
					rows = append(rows, []string{
						strconv.Itoa(family.ID),
						family.Handle,
						family.Name,
						orNA(family.AccountingCode),
					})
				}

				return renderTable(w, []string{"ID", "Handle", "Name", "Accounting Code"}, rows)
			})
		},
	}
}

func newProductsComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components PRODUCT_FAMILY_ID",
		Short: "List a product family's components",
		Long:  "List the component definitions of a product family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			familyID, err := parseID(args[0], "product family")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			components, err := client.Components().ListForFamily(context.Background(), familyID)
			if err != nil {
				return fmt.Errorf("failed to list components: %w", err)
			}

			items := sortedValues(components)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				rows := make([][]string, 0, len(items))
				for _, component := range items {
					rows = append(rows, []string{
						strconv.Itoa(component.ID),
						component.Name,
						string(component.Kind),
						string(component.PricingScheme),
						component.UnitPrice.String(),
						orNA(component.UnitName),
					})
				}

				return renderTable(w, []string{"ID", "Name", "Kind", "Pricing", "Unit Price", "Unit"}, rows)
			})
		},
	}
}

func formatInterval(interval int, unit chargify.IntervalUnit) string {
	if interval == 0 {
		return constants.NotAvailable
	}

	return fmt.Sprintf("%d %s", interval, unit)
}

func formatOptionalInterval(interval *int, unit chargify.IntervalUnit) string {
	if interval == nil {
		return constants.NotAvailable
	}

	return formatInterval(*interval, unit)
}
