package entities

import "time"

// TokenScope is always shopper for this driver.
const TokenScope = "shopper"

// StoredToken is a card token held by the gateway for a shopper.
type StoredToken struct {
	ID     string    `json:"id"`
	Expiry time.Time `json:"expiry"`
}

// TokenOwner selects the shopper and the merchant account the token lives under.
type TokenOwner struct {
	ShopperID       string
	CurrencyCode    string
	CustomerPresent bool
}
