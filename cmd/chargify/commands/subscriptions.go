package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/spf13/cobra"
)

// NewSubscriptionsCommand creates the subscriptions command group
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs", "sub"},
		Short:   "Manage subscriptions",
		Long:    "List, view and manage the lifecycle of subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())
	cmd.AddCommand(newSubscriptionsReactivateCommand())
	cmd.AddCommand(newSubscriptionsMigrateCommand())
	cmd.AddCommand(newSubscriptionsComponentsCommand())
	cmd.AddCommand(newSubscriptionsAllocateCommand())
	cmd.AddCommand(newSubscriptionsUsageCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		flags listFlags
		state string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions, optionally filtered by state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			params := flags.params()
			params.State = state

			ctx := context.Background()

			var subscriptions map[int]chargify.Subscription
			if flags.all {
				params.Page = 0
				params.PerPage = 0
				subscriptions, err = client.Subscriptions().ListAll(ctx, params)
			} else {
				subscriptions, err = client.Subscriptions().List(ctx, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return renderSubscriptions(cmd.OutOrStdout(), sortedValues(subscriptions))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&state, "state", "", "filter by state (e.g. active, past_due, canceled)")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
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

			subscription, err := client.Subscriptions().Get(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), subscription)
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		req              chargify.SubscriptionCreate
		collectionMethod string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Subscribe an existing customer to a product, selected by handle or ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			create := req
			create.PaymentCollectionMethod = chargify.ParsePaymentCollectionMethod(collectionMethod)

			err := create.Validate()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Create(context.Background(), &create)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), subscription)
		},
	}

	cmd.Flags().StringVar(&req.ProductHandle, "product-handle", "", "product handle")
	cmd.Flags().IntVar(&req.ProductID, "product-id", 0, "product ID")
	cmd.Flags().IntVar(&req.CustomerID, "customer-id", 0, "existing customer ID")
	cmd.Flags().StringVar(&req.CustomerReference, "customer-reference", "", "existing customer reference")
	cmd.Flags().IntVar(&req.PaymentProfileID, "payment-profile-id", 0, "existing payment profile ID")
	cmd.Flags().StringVar(&req.CouponCode, "coupon", "", "coupon code")
	cmd.Flags().StringVar(&req.Reference, "reference", "", "your system's reference")
	cmd.Flags().StringVar(&collectionMethod, "collection-method", "", "payment collection method (automatic, invoice, remittance, prepaid)")

	return cmd
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription immediately, optionally recording a message",
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

			subscription, err := client.Subscriptions().Cancel(context.Background(), subscriptionID, &chargify.SubscriptionCancel{
				Message: message,
			})
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), subscription)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "cancellation message")

	return cmd
}

func newSubscriptionsReactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate SUBSCRIPTION_ID",
		Short: "Reactivate a subscription",
		Long:  "Reactivate a canceled or expired subscription",
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

			subscription, err := client.Subscriptions().Reactivate(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to reactivate subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), subscription)
		},
	}
}

func newSubscriptionsMigrateCommand() *cobra.Command {
	var (
		req     chargify.MigrationRequest
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "migrate SUBSCRIPTION_ID",
		Short: "Move a subscription to another product",
		Long:  "Migrate a subscription to another product, or preview the proration with --preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], "subscription")
			if err != nil {
				return err
			}

			migration := req
			migration.IncludeTrial = optionalBool(cmd, "include-trial")
			migration.IncludeInitialCharge = optionalBool(cmd, "include-initial-charge")
			migration.IncludeCoupons = optionalBool(cmd, "include-coupons")
			migration.PreservePeriod = optionalBool(cmd, "preserve-period")

			err = migration.Validate()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			if preview {
				result, err := client.Subscriptions().PreviewMigration(ctx, subscriptionID, &migration)
				if err != nil {
					return fmt.Errorf("failed to preview migration: %w", err)
				}

				return renderMigrationPreview(cmd.OutOrStdout(), result)
			}

			subscription, err := client.Subscriptions().Migrate(ctx, subscriptionID, &migration)
			if err != nil {
				return fmt.Errorf("failed to migrate subscription: %w", err)
			}

			return renderSubscription(cmd.OutOrStdout(), subscription)
		},
	}

	cmd.Flags().StringVar(&req.ProductHandle, "product-handle", "", "target product handle")
	cmd.Flags().IntVar(&req.ProductID, "product-id", 0, "target product ID")
	cmd.Flags().Bool("include-trial", false, "apply the target product's trial")
	cmd.Flags().Bool("include-initial-charge", false, "apply the target product's initial charge")
	cmd.Flags().Bool("include-coupons", false, "keep existing coupons")
	cmd.Flags().Bool("preserve-period", false, "keep the current billing period")
	cmd.Flags().BoolVar(&preview, "preview", false, "show the proration without migrating")

	return cmd
}

func newSubscriptionsComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components SUBSCRIPTION_ID",
		Short: "List a subscription's components",
		Long:  "List the component quantities and balances of a subscription",
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

			components, err := client.Components().ListForSubscription(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to list subscription components: %w", err)
			}

			items := sortedValues(components)

			return renderOutput(cmd.OutOrStdout(), items, func(w io.Writer) error {
				rows := make([][]string, 0, len(items))
				for _, component := range items {
					rows = append(rows, []string{
						strconv.Itoa(component.ComponentID),
						component.Name,
						string(component.Kind),
						strconv.Itoa(component.AllocatedQuantity),
						strconv.Itoa(component.UnitBalance),
						strconv.FormatBool(component.Enabled),
					})
				}

				return renderTable(w, []string{"Component ID", "Name", "Kind", "Allocated", "Balance", "Enabled"}, rows)
			})
		},
	}
}

func newSubscriptionsAllocateCommand() *cobra.Command {
	var (
		req       chargify.AllocationRequest
		upgrade   string
		downgrade string
	)

	cmd := &cobra.Command{
		Use:   "allocate SUBSCRIPTION_ID COMPONENT_ID",
		Short: "Set a component quantity",
		Long:  "Allocate a new quantity of a quantity-based or on/off component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, componentID, err := parseSubscriptionComponent(args)
			if err != nil {
				return err
			}

			allocation := req
			allocation.ProrationUpgradeScheme = chargify.ParseProrationUpgradeScheme(upgrade)
			allocation.ProrationDowngradeScheme = chargify.ParseProrationDowngradeScheme(downgrade)

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Components().Allocate(context.Background(), subscriptionID, componentID, &allocation)
			if err != nil {
				return fmt.Errorf("failed to allocate component: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return renderProperties(w, [][2]string{
					{"Component ID", strconv.Itoa(result.ComponentID)},
					{"Subscription ID", strconv.Itoa(result.SubscriptionID)},
					{"Quantity", strconv.Itoa(result.Quantity)},
					{"Previous Quantity", strconv.Itoa(result.PreviousQuantity)},
					{"Memo", orNA(result.Memo)},
					{"Timestamp", formatTime(result.Timestamp)},
				})
			})
		},
	}

	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "new quantity")
	cmd.Flags().StringVar(&req.Memo, "memo", "", "memo recorded with the allocation")
	cmd.Flags().StringVar(&upgrade, "upgrade-scheme", "", "proration on upgrade (e.g. prorate-attempt-capture)")
	cmd.Flags().StringVar(&downgrade, "downgrade-scheme", "", "proration on downgrade (prorate, no-prorate)")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newSubscriptionsUsageCommand() *cobra.Command {
	var req chargify.UsageRequest

	cmd := &cobra.Command{
		Use:   "usage SUBSCRIPTION_ID COMPONENT_ID",
		Short: "Record metered usage",
		Long:  "Record usage of a metered component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, componentID, err := parseSubscriptionComponent(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			usage := req

			result, err := client.Components().RecordUsage(context.Background(), subscriptionID, componentID, &usage)
			if err != nil {
				return fmt.Errorf("failed to record usage: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return renderProperties(w, [][2]string{
					{"ID", strconv.Itoa(result.ID)},
					{"Quantity", strconv.Itoa(result.Quantity)},
					{"Memo", orNA(result.Memo)},
				})
			})
		},
	}

	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "units used")
	cmd.Flags().StringVar(&req.Memo, "memo", "", "memo recorded with the usage")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func parseSubscriptionComponent(args []string) (int, int, error) {
	subscriptionID, err := parseID(args[0], "subscription")
	if err != nil {
		return 0, 0, err
	}

	componentID, err := parseID(args[1], "component")
	if err != nil {
		return 0, 0, err
	}

	return subscriptionID, componentID, nil
}

func renderSubscriptions(w io.Writer, subscriptions []chargify.Subscription) error {
	return renderOutput(w, subscriptions, func(w io.Writer) error {
		if len(subscriptions) == 0 {
			_, _ = fmt.Fprintln(w, "No subscriptions found")

			return nil
		}

		rows := make([][]string, 0, len(subscriptions))
		for _, subscription := range subscriptions {
			rows = append(rows, []string{
				strconv.Itoa(subscription.ID),
				string(subscription.State),
				subscription.Customer.Email,
				subscription.Product.Handle,
				formatCents(subscription.BalanceInCents),
				formatTime(subscription.NextAssessmentAt),
			})
		}

		return renderTable(w, []string{"ID", "State", "Customer", "Product", "Balance", "Next Assessment"}, rows)
	})
}

func renderSubscription(w io.Writer, subscription *chargify.Subscription) error {
	return renderOutput(w, subscription, func(w io.Writer) error {
		return renderProperties(w, [][2]string{
			{"ID", strconv.Itoa(subscription.ID)},
			{"State", orNA(string(subscription.State))},
			{"Customer", fmt.Sprintf("%s %s <%s>", subscription.Customer.FirstName, subscription.Customer.LastName, subscription.Customer.Email)},
			{"Product", orNA(subscription.Product.Name)},
			{"Balance", formatCents(subscription.BalanceInCents)},
			{"Total Revenue", formatCents(subscription.TotalRevenueInCents)},
			{"Collection Method", orNA(string(subscription.PaymentCollectionMethod))},
			{"Current Period Ends", formatTime(subscription.CurrentPeriodEndsAt)},
			{"Next Assessment", formatTime(subscription.NextAssessmentAt)},
			{"Canceled", formatTime(subscription.CanceledAt)},
			{"Cancellation Message", orNA(truncate(subscription.CancellationMessage))},
			{"Card", orNA(subscription.PaymentProfile.MaskedCardNumber)},
			{"Reference", orNA(subscription.Reference)},
			{"Created", formatTime(subscription.CreatedAt)},
		})
	})
}

func renderMigrationPreview(w io.Writer, preview *chargify.MigrationPreview) error {
	return renderOutput(w, preview, func(w io.Writer) error {
		return renderProperties(w, [][2]string{
			{"Prorated Adjustment", formatCents(preview.ProratedAdjustmentInCents)},
			{"Charge", formatCents(preview.ChargeInCents)},
			{"Payment Due", formatCents(preview.PaymentDueInCents)},
			{"Credit Applied", formatCents(preview.CreditAppliedInCents)},
		})
	})
}
