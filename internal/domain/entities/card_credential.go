package entities

import "errors"

var ErrMissingCardCredential = errors.New("no card token or card number supplied")

// CardOverrides are optional fields sent alongside a card. The gateway
// expects them in the order expiry, holder name, CVC, address.
type CardOverrides struct {
	ExpiryMonth string
	ExpiryYear  string
	HolderName  string
	CVC         string
	Address     *Address
}

// HasExpiry reports whether both expiry parts are set.
func (o CardOverrides) HasExpiry() bool {
	return o.ExpiryMonth != "" && o.ExpiryYear != ""
}

// Empty reports whether no override is set.
func (o CardOverrides) Empty() bool {
	return !o.HasExpiry() && o.HolderName == "" && o.CVC == "" && o.Address == nil
}

// CardCredential is either a TokenReference or a RawCard.
type CardCredential interface {
	Overrides() CardOverrides
	isCardCredential()
}

// TokenReference points at a card stored with the gateway.
type TokenReference struct {
	TokenID string
	CardOverrides
}

func (t TokenReference) Overrides() CardOverrides { return t.CardOverrides }
func (TokenReference) isCardCredential()          {}

// RawCard is the legacy full card number path.
type RawCard struct {
	Number string
	CardOverrides
}

func (r RawCard) Overrides() CardOverrides { return r.CardOverrides }
func (RawCard) isCardCredential()          {}

// ResolveCardCredential picks the credential for a charge. A saved source
// token wins over an inline token, which wins over a raw card number.
func ResolveCardCredential(source *PaymentSource, data PaymentData) (CardCredential, error) {
	overrides := CardOverrides{
		ExpiryMonth: data.ExpiryMonth,
		ExpiryYear:  data.ExpiryYear,
		HolderName:  data.HolderName,
		CVC:         data.CVC,
		Address:     data.Address,
	}
	switch {
	case source != nil && source.Token != "":
		return TokenReference{TokenID: source.Token, CardOverrides: overrides}, nil
	case data.Token != "":
		return TokenReference{TokenID: data.Token, CardOverrides: overrides}, nil
	case data.CardNumber != "":
		return RawCard{Number: data.CardNumber, CardOverrides: overrides}, nil
	}
	return nil, ErrMissingCardCredential
}
