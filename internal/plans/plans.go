// Package plans holds the subscription catalogue shown on the dashboard.
package plans

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/atikulmunna/agribot/internal/i18n"
)

var (
	// ErrUnknownPlan is returned for plan ids not in Catalog.
	ErrUnknownPlan = errors.New("unknown plan")
	// ErrUnknownCycle is returned for billing cycles other than monthly/yearly.
	ErrUnknownCycle = errors.New("unknown billing cycle")
	// ErrPaymentUnavailable is returned by every checkout. There is no
	// payment backend.
	ErrPaymentUnavailable = errors.New("payment processing is not available")
)

// Cycle is a billing period.
type Cycle string

const (
	Monthly Cycle = "monthly"
	Yearly  Cycle = "yearly"
)

// ParseCycle accepts "monthly"/"month" and "yearly"/"year".
func ParseCycle(s string) (Cycle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCycle, s)
}

// Plan is one subscription tier. Prices are whole rupees.
type Plan struct {
	ID          string   `json:"id"`
	NameKey     i18n.Key `json:"name_key"`
	Description string   `json:"description"`
	Monthly     int      `json:"monthly"`
	Yearly      int      `json:"yearly"`
	Popular     bool     `json:"popular"`
	Features    []string `json:"features"`
}

// Catalog lists every plan in display order.
var Catalog = []Plan{
	{
		ID:          "base",
		NameKey:     i18n.SubscriptionBase,
		Description: "Perfect for small farms",
		Monthly:     1499,
		Yearly:      15999,
		Features: []string{
			"Mobile App Access",
			"Basic Analytics",
			"Remote Control",
			"Soil Monitoring",
			"Basic Security",
		},
	},
	{
		ID:          "premium",
		NameKey:     i18n.SubscriptionPremium,
		Description: "For professional farming operations",
		Monthly:     2499,
		Yearly:      27999,
		Popular:     true,
		Features: []string{
			"AI-Powered Insights",
			"Cloud Storage (100GB)",
			"Advanced Analytics",
			"Automated Scheduling",
			"Priority Support",
			"Advanced Security",
			"Custom Integrations",
			"Weather Predictions",
		},
	},
}

// Lookup finds a plan by id, case-insensitively.
func Lookup(id string) (Plan, error) {
	for _, p := range Catalog {
		if strings.EqualFold(p.ID, strings.TrimSpace(id)) {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, id)
}

// Quote returns the price of p for one billing cycle.
func Quote(p Plan, c Cycle) (int, error) {
	switch c {
	case Monthly:
		return p.Monthly, nil
	case Yearly:
		return p.Yearly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCycle, c)
}

// YearlySavings is the whole-percent discount of yearly billing against
// twelve monthly payments.
func YearlySavings(p Plan) int {
	full := 12 * p.Monthly
	if full <= 0 {
		return 0
	}
	return int(math.Round(float64(full-p.Yearly) / float64(full) * 100))
}

// Checkout validates the request and then fails: billing is not wired to
// any provider.
func Checkout(id string, c Cycle) error {
	p, err := Lookup(id)
	if err != nil {
		return err
	}
	if _, err := Quote(p, c); err != nil {
		return err
	}
	return fmt.Errorf("checkout %s/%s: %w", p.ID, c, ErrPaymentUnavailable)
}
