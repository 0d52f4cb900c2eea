package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewCouponsCommand creates the coupons command group
func NewCouponsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coupons",
		Aliases: []string{"coupon"},
		Short:   "Manage coupons",
		Long:    "View, find and create coupons",
	}

	cmd.AddCommand(newCouponsGetCommand())
	cmd.AddCommand(newCouponsFindCommand())
	cmd.AddCommand(newCouponsCreateCommand())

	return cmd
}

func newCouponsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COUPON_ID",
		Short: "Get coupon details",
		Long:  "Display detailed information about a specific coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			couponID, err := parseID(args[0], "coupon")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			coupon, err := client.Coupons().Get(context.Background(), couponID)
			if err != nil {
				return fmt.Errorf("failed to get coupon: %w", err)
			}

			return renderCoupon(cmd.OutOrStdout(), coupon)
		},
	}
}

func newCouponsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find CODE",
		Short: "Find a coupon by code",
		Long:  "Display the coupon redeemed with a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			coupon, err := client.Coupons().Find(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find coupon: %w", err)
			}

			return renderCoupon(cmd.OutOrStdout(), coupon)
		},
	}
}

func newCouponsCreateCommand() *cobra.Command {
	var (
		req        chargify.CouponRequest
		percentage string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a coupon",
		Long:  "Create a coupon in a product family with either a flat amount or a percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coupon := req
			coupon.AllowNegativeBalance = optionalBool(cmd, "allow-negative-balance")
			coupon.Recurring = optionalBool(cmd, "recurring")
			coupon.DurationPeriodCount = optionalInt(cmd, "duration")

			if cmd.Flags().Changed("amount-in-cents") {
				cents, err := cmd.Flags().GetInt64("amount-in-cents")
				if err != nil {
					return err
				}

				coupon.AmountInCents = &cents
			}

			if percentage != "" {
				value, err := decimal.NewFromString(percentage)
				if err != nil {
					return fmt.Errorf("%w: %q", constants.ErrInvalidAmount, percentage)
				}

				coupon.Percentage = &value
			}

			err := coupon.Validate()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			created, err := client.Coupons().Create(context.Background(), &coupon)
			if err != nil {
				return fmt.Errorf("failed to create coupon: %w", err)
			}

			return renderCoupon(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().IntVar(&req.ProductFamilyID, "family", 0, "product family ID")
	cmd.Flags().StringVar(&req.Name, "name", "", "coupon name")
	cmd.Flags().StringVar(&req.Code, "code", "", "code customers redeem")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().Int64("amount-in-cents", 0, "flat discount in cents")
	cmd.Flags().StringVar(&percentage, "percentage", "", "percentage discount (e.g. 12.5)")
	cmd.Flags().Bool("recurring", false, "apply on every renewal")
	cmd.Flags().Bool("allow-negative-balance", false, "allow the discount to create a credit")
	cmd.Flags().Int("duration", 0, "number of periods a recurring coupon applies")

	return cmd
}

func renderCoupon(w io.Writer, coupon *chargify.Coupon) error {
	return renderOutput(w, coupon, func(w io.Writer) error {
		discount := formatOptionalCents(coupon.AmountInCents)
		if coupon.Percentage != nil {
			discount = coupon.Percentage.String() + "%"
		}

		return renderProperties(w, [][2]string{
			{"ID", strconv.Itoa(coupon.ID)},
			{"Name", coupon.Name},
			{"Code", coupon.Code},
			{"Description", orNA(truncate(coupon.Description))},
			{"Discount", discount},
			{"Recurring", strconv.FormatBool(coupon.Recurring)},
			{"Duration", formatOptionalInt(coupon.DurationPeriodCount)},
			{"Product Family ID", strconv.Itoa(coupon.ProductFamilyID)},
			{"Starts", formatTime(coupon.StartDate)},
			{"Ends", formatTime(coupon.EndDate)},
			{"Archived", formatTime(coupon.ArchivedAt)},
		})
	})
}
