package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List or delete a shopper's stored card tokens",
	}
	cmd.AddCommand(newTokensListCmd(a))
	cmd.AddCommand(newTokensDeleteCmd(a))
	return cmd
}

func newTokensListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [shopper-id]",
		Short: "List stored tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := a.owner(args[0])
			if err != nil {
				return err
			}
			tokens, err := a.tokens.ListTokens(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("list tokens: %s", describe(err))
			}
			if len(tokens) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tokens found")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TOKEN\tEXPIRY")
			for _, t := range tokens {
				fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Expiry.Format("01/2006"))
			}
			return w.Flush()
		},
	}
}

func newTokensDeleteCmd(a *app) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "delete [shopper-id] [token-id]",
		Short: "Delete a stored token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := a.owner(args[0])
			if err != nil {
				return err
			}
			if err := a.tokens.DeleteToken(cmd.Context(), args[1], owner, reason); err != nil {
				return fmt.Errorf("delete token: %s", describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted token %s\n", args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", usecase.DefaultTokenDeleteReason, "Reason recorded with the token event")
	return cmd
}

func (a *app) owner(shopperID string) (entities.TokenOwner, error) {
	currency, err := a.currencyCode()
	if err != nil {
		return entities.TokenOwner{}, err
	}
	return entities.TokenOwner{ShopperID: shopperID, CurrencyCode: currency, CustomerPresent: a.customerPresent}, nil
}
