package plans

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	p, err := Lookup("Premium")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Popular || p.Monthly != 2499 {
		t.Errorf("unexpected premium plan %+v", p)
	}
	if _, err := Lookup("gold"); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	base, _ := Lookup("base")
	if got, _ := Quote(base, Monthly); got != 1499 {
		t.Errorf("expected 1499, got %d", got)
	}
	if got, _ := Quote(base, Yearly); got != 15999 {
		t.Errorf("expected 15999, got %d", got)
	}
	if _, err := Quote(base, Cycle("weekly")); !errors.Is(err, ErrUnknownCycle) {
		t.Errorf("expected ErrUnknownCycle, got %v", err)
	}
}

func TestYearlySavings(t *testing.T) {
	base, _ := Lookup("base")
	premium, _ := Lookup("premium")
	if got := YearlySavings(base); got != 11 {
		t.Errorf("expected 11%% base savings, got %d", got)
	}
	if got := YearlySavings(premium); got != 7 {
		t.Errorf("expected 7%% premium savings, got %d", got)
	}
	if got := YearlySavings(Plan{}); got != 0 {
		t.Errorf("expected 0 for free plan, got %d", got)
	}
}

func TestCheckoutUnavailable(t *testing.T) {
	if err := Checkout("base", Yearly); !errors.Is(err, ErrPaymentUnavailable) {
		t.Errorf("expected ErrPaymentUnavailable, got %v", err)
	}
	if err := Checkout("nope", Monthly); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}

func TestParseCycle(t *testing.T) {
	for in, want := range map[string]Cycle{"": Monthly, "month": Monthly, "YEARLY": Yearly} {
		if got, err := ParseCycle(in); err != nil || got != want {
			t.Errorf("ParseCycle(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseCycle("daily"); !errors.Is(err, ErrUnknownCycle) {
		t.Errorf("expected ErrUnknownCycle, got %v", err)
	}
}
