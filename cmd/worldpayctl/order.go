package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect orders",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status [order-code]",
		Short: "Show an order's last event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, err := a.currencyCode()
			if err != nil {
				return err
			}
			lastEvent, err := a.refund.OrderStatus(cmd.Context(), args[0], currency, a.customerPresent)
			if err != nil {
				return fmt.Errorf("order status: %s", describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\trefundable=%t\n", args[0], lastEvent, entities.IsRefundable(lastEvent))
			return nil
		},
	})
	return cmd
}
