package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/infrastructure/payments"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

var Version = "dev"

// app holds the use cases the commands call. It is built once the flags are
// parsed, unless a test has filled it in already.
type app struct {
	settingsPath    string
	currency        string
	customerPresent bool

	refund usecase.IRefundUseCase
	tokens usecase.ITokenUseCase
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "worldpayctl",
		Short:         "Operator tool for the Worldpay invoice driver",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.settingsPath, "settings", config.Getenv("WORLDPAY_SETTINGS_FILE", config.DefaultSettingsFile), "Worldpay settings file")
	flags.StringVarP(&a.currency, "currency", "c", "", "Currency of the merchant account (required)")
	flags.BoolVar(&a.customerPresent, "customer-present", false, "Use the customer-present merchant account")

	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newRefundCmd(a))
	rootCmd.AddCommand(newOrderCmd(a))
	return rootCmd
}

func (a *app) init() error {
	if a.refund != nil && a.tokens != nil {
		return nil
	}
	settings, err := config.Load(a.settingsPath)
	if err != nil {
		return err
	}
	gateway := payments.NewWorldpayGateway(settings)
	a.refund = usecase.NewRefundUseCase(gateway)
	a.tokens = usecase.NewTokenUseCase(gateway)
	return nil
}

func (a *app) currencyCode() (string, error) {
	if len(a.currency) != 3 {
		return "", fmt.Errorf("--currency must be a 3-letter code")
	}
	return strings.ToUpper(a.currency), nil
}

// describe keeps gateway text out of the terminal except where it is the
// operator's own input or configuration at fault.
func describe(err error) string {
	if entities.IsConfigurationError(err) || errors.Is(err, entities.ErrInvalidRequest) {
		return err.Error()
	}
	return entities.SafeMessage(err)
}
