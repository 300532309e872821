package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

func newRefundCmd(a *app) *cobra.Command {
	var (
		exponent  int
		reference string
	)
	cmd := &cobra.Command{
		Use:   "refund [order-code] [amount-in-minor-units]",
		Short: "Refund part or all of a captured order",
		Long: `Checks the order's last event and refundable amount, then sends the refund.
The amount is in minor units, e.g. 1050 is 10.50 at exponent 2.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, err := a.currencyCode()
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			out, err := a.refund.Refund(cmd.Context(), entities.RefundRequest{
				OrderCode:       args[0],
				Amount:          amount,
				CurrencyCode:    currency,
				Exponent:        exponent,
				CustomerPresent: a.customerPresent,
				Reference:       reference,
			})
			if err != nil {
				return err
			}
			if !out.IsComplete() {
				return fmt.Errorf("refund %s: %s", out.Status, out.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refund sent for %s, reference %s\n", args[0], out.TransactionID)
			return nil
		},
	}
	cmd.Flags().IntVar(&exponent, "exponent", 2, "Currency exponent")
	cmd.Flags().StringVar(&reference, "reference", "", "Refund reference (generated when empty)")
	return cmd
}
