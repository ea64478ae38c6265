package mongostore

import "testing"

func TestParsePurchase(t *testing.T) {
	p, err := ParsePurchase(`{"id":"t-1","owner":"alice","symbol":"IBM","shares":5,"price":120.5,"commission":9.99}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Owner != "alice" || p.Symbol != "IBM" || p.Shares != 5 {
		t.Fatalf("unexpected purchase: %+v", p)
	}
	if p.Notional != 5*120.5 {
		t.Fatalf("notional not derived: got %v", p.Notional)
	}
}

func TestParsePurchaseKeepsNotional(t *testing.T) {
	p, err := ParsePurchase(`{"owner":"bob","symbol":"T","shares":2,"price":10,"notional":42}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Notional != 42 {
		t.Fatalf("notional overwritten: got %v", p.Notional)
	}
}

func TestParsePurchaseMalformed(t *testing.T) {
	p, err := ParsePurchase("not json")
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if p.Raw != "not json" {
		t.Fatalf("raw payload not preserved: %q", p.Raw)
	}
}
