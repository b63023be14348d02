package commands

import (
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// Rules bundles the tunable fee, fine and booking policies.
type Rules struct {
	Fee           session.FeePolicy
	Billing       billing.Policy
	EarlyArrival  time.Duration
	PastTolerance time.Duration
}

func DefaultRules() Rules {
	return Rules{
		Fee:           session.NewFeePolicy(session.DefaultBillingUnit),
		Billing:       billing.DefaultPolicy(),
		EarlyArrival:  30 * time.Minute,
		PastTolerance: 5 * time.Minute,
	}
}

func NewRules(cfg config.BillingConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}
	return Rules{
		Fee: session.NewFeePolicy(cfg.Unit),
		Billing: billing.Policy{
			OverstayGrace:     cfg.OverstayGrace,
			OverstayFineHours: decimal.RequireFromString(cfg.OverstayFineHours),
			NoShowGrace:       cfg.NoShowGrace,
			NoShowFineHours:   decimal.RequireFromString(cfg.NoShowFineHours),
			UnpaidFeeAfter:    cfg.UnpaidFeeAfter,
			UnpaidFineAfter:   cfg.UnpaidFineAfter,
			EscalationFactor:  decimal.RequireFromString(cfg.EscalationFactor),
		},
		EarlyArrival:  cfg.EarlyArrival,
		PastTolerance: cfg.PastTolerance,
	}, nil
}
