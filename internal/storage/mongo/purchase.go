package mongostore

import "encoding/json"

// StockPurchase is one trade as carried on the broker payload and persisted
// to the store. Notional is derived from shares*price when absent.
type StockPurchase struct {
	ID         string  `bson:"id,omitempty" json:"id,omitempty"`
	Owner      string  `bson:"owner,omitempty" json:"owner,omitempty"`
	Symbol     string  `bson:"symbol,omitempty" json:"symbol,omitempty"`
	Shares     int     `bson:"shares,omitempty" json:"shares,omitempty"`
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	Notional   float64 `bson:"notional,omitempty" json:"notional,omitempty"`
	When       string  `bson:"when,omitempty" json:"when,omitempty"`
	Commission float64 `bson:"commission,omitempty" json:"commission,omitempty"`
	// Raw preserves payloads that failed to parse so nothing is lost.
	Raw string `bson:"raw,omitempty" json:"-"`
}

// ParsePurchase decodes a broker payload into a StockPurchase. On malformed
// input it returns a purchase carrying only the raw payload together with the
// parse error; callers persist it either way.
func ParsePurchase(value string) (StockPurchase, error) {
	var p StockPurchase
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		return StockPurchase{Raw: value}, err
	}
	if p.Notional == 0 && p.Shares != 0 {
		p.Notional = float64(p.Shares) * p.Price
	}
	return p, nil
}
