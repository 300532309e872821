// Package config loads the gateway settings: merchant accounts keyed by
// (currency, customer present), 3DS signing parameters and transport limits.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

const (
	DefaultSettingsFile        = "worldpay.yaml"
	DefaultHTTPTimeout         = 30 * time.Second
	DefaultBreakerMaxFailures  = 5
	DefaultBreakerOpenFor      = 60 * time.Second
	DefaultChallengeWindowSize = "390x400"
	DefaultChallengePreference = "noPreference"
)

// Gateway endpoints per environment.
const (
	testGatewayURL   = "https://secure-test.worldpay.com/jsp/merchant/xml/paymentService.jsp"
	liveGatewayURL   = "https://secure.worldpay.com/jsp/merchant/xml/paymentService.jsp"
	testChallengeURL = "https://centinelapistag.cardinalcommerce.com/V2/Cruise/StepUp"
	liveChallengeURL = "https://centinelapi.cardinalcommerce.com/V2/Cruise/StepUp"
	testDDCURL       = "https://ddc-test.cardinalcommerce.com/V1/Cruise/Collect"
	liveDDCURL       = "https://ddc.cardinalcommerce.com/V1/Cruise/Collect"
)

type Environment string

const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

// MerchantAccount is one credential record.
type MerchantAccount struct {
	CurrencyCode    string `yaml:"currency" validate:"required,len=3"`
	CustomerPresent bool   `yaml:"customer_present"`
	MerchantCode    string `yaml:"merchant_code" validate:"required"`
	InstallationID  string `yaml:"installation_id"`
	XMLUsername     string `yaml:"xml_username" validate:"required"`
	XMLPassword     string `yaml:"xml_password" validate:"required"`
}

// ThreeDS holds the signing parameters for challenge and device data
// collection tokens.
type ThreeDS struct {
	Issuer              string `yaml:"issuer" validate:"required"`
	OrgUnitID           string `yaml:"org_unit_id" validate:"required"`
	MACKey              string `yaml:"mac_key" validate:"required"`
	ChallengeWindowSize string `yaml:"challenge_window_size"`
	ChallengePreference string `yaml:"challenge_preference" validate:"omitempty,oneof=noPreference noChallengeRequested challengeRequested challengeMandated"`
}

type Breaker struct {
	MaxFailures uint32        `yaml:"max_failures"`
	OpenFor     time.Duration `yaml:"open_for"`
}

// Settings is the resolved, immutable gateway configuration.
type Settings struct {
	Environment Environment       `yaml:"environment" validate:"oneof=test live"`
	Merchants   []MerchantAccount `yaml:"merchants" validate:"required,min=1,dive"`
	ThreeDS     ThreeDS           `yaml:"three_ds"`
	CookieKey   string            `yaml:"cookie_key" validate:"required,min=16"`
	HTTPTimeout time.Duration     `yaml:"http_timeout"`
	Breaker     Breaker           `yaml:"breaker"`
}

// Load reads the YAML settings file, applies env overrides and defaults,
// and validates the result.
func Load(path string) (Settings, error) {
	if path == "" {
		path = Getenv("WORLDPAY_SETTINGS_FILE", DefaultSettingsFile)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	log.Printf("[config] loaded settings path=%s environment=%s merchants=%d", path, s.Environment, len(s.Merchants))
	return s, nil
}

// Parse decodes settings from YAML bytes.
func Parse(raw []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("decode yaml: %w", err)
	}
	s.applyEnv()
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("WORLDPAY_ENVIRONMENT"); v != "" {
		s.Environment = Environment(strings.ToLower(v))
	}
	if v := os.Getenv("WORLDPAY_COOKIE_KEY"); v != "" {
		s.CookieKey = v
	}
	if v := os.Getenv("WORLDPAY_3DS_MAC_KEY"); v != "" {
		s.ThreeDS.MACKey = v
	}
}

func (s *Settings) applyDefaults() {
	if s.Environment == "" {
		s.Environment = EnvironmentTest
	}
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = DefaultHTTPTimeout
	}
	if s.Breaker.MaxFailures == 0 {
		s.Breaker.MaxFailures = DefaultBreakerMaxFailures
	}
	if s.Breaker.OpenFor <= 0 {
		s.Breaker.OpenFor = DefaultBreakerOpenFor
	}
	if s.ThreeDS.ChallengeWindowSize == "" {
		s.ThreeDS.ChallengeWindowSize = DefaultChallengeWindowSize
	}
	if s.ThreeDS.ChallengePreference == "" {
		s.ThreeDS.ChallengePreference = DefaultChallengePreference
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate reports the first invalid field by its YAML path.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	path := first.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if first.Param() != "" {
		return fmt.Errorf("invalid settings: %s failed %s=%s", path, first.Tag(), first.Param())
	}
	return fmt.Errorf("invalid settings: %s failed %s", path, first.Tag())
}

// Merchant selects the account for a currency and presence flag.
func (s Settings) Merchant(currencyCode string, customerPresent bool) (MerchantAccount, error) {
	for _, m := range s.Merchants {
		if strings.EqualFold(m.CurrencyCode, currencyCode) && m.CustomerPresent == customerPresent {
			return m, nil
		}
	}
	return MerchantAccount{}, &entities.ConfigurationError{CurrencyCode: strings.ToUpper(currencyCode), CustomerPresent: customerPresent}
}

func (s Settings) IsLive() bool { return s.Environment == EnvironmentLive }

// GatewayURL is the XML endpoint for the configured environment.
func (s Settings) GatewayURL() string {
	if s.IsLive() {
		return liveGatewayURL
	}
	return testGatewayURL
}

// ChallengeURL is where the shopper's browser is sent for a 3DS challenge.
func (s Settings) ChallengeURL() string {
	if s.IsLive() {
		return liveChallengeURL
	}
	return testChallengeURL
}

// DDCURL is the device data collection endpoint.
func (s Settings) DDCURL() string {
	if s.IsLive() {
		return liveDDCURL
	}
	return testDDCURL
}
