package models

import "fmt"

// PlanType identifies a subscription tier.
type PlanType string

const (
	PlanSilver   PlanType = "silver"
	PlanGold     PlanType = "gold"
	PlanPlatinum PlanType = "platinum"
)

// Plan describes a tiered subscription offering. RequiredDays is fixed per
// tier and the enrollment schedule step must match it exactly.
type Plan struct {
	Type             PlanType `bson:"type" json:"type"`
	SessionsPerMonth int      `bson:"sessionsPerMonth" json:"sessionsPerMonth"`
	RequiredDays     int      `bson:"requiredDays" json:"requiredDays"`
	PriceMultiplier  float64  `bson:"priceMultiplier" json:"priceMultiplier"`
}

var planCatalog = map[PlanType]Plan{
	PlanSilver:   {Type: PlanSilver, SessionsPerMonth: 12, RequiredDays: 3, PriceMultiplier: 1.0},
	PlanGold:     {Type: PlanGold, SessionsPerMonth: 24, RequiredDays: 6, PriceMultiplier: 0.95},
	PlanPlatinum: {Type: PlanPlatinum, SessionsPerMonth: 28, RequiredDays: 7, PriceMultiplier: 0.9},
}

// PlanByType looks up a plan in the catalog.
func PlanByType(t PlanType) (Plan, error) {
	p, ok := planCatalog[t]
	if !ok {
		return Plan{}, fmt.Errorf("unknown plan type %q", t)
	}
	return p, nil
}

// AllPlans returns the catalog in tier order.
func AllPlans() []Plan {
	return []Plan{planCatalog[PlanSilver], planCatalog[PlanGold], planCatalog[PlanPlatinum]}
}

// MonthlyPrice computes the displayed monthly price for a teacher's hourly rate.
func (p Plan) MonthlyPrice(hourlyRate float64) float64 {
	return hourlyRate * float64(p.SessionsPerMonth) * p.PriceMultiplier
}

// DefaultHourlyRate applies when a teacher profile carries no rate.
const DefaultHourlyRate = 500

// ResolveHourlyRate is the single place the hourly-rate fallback lives.
// Call sites must not re-implement the default.
func ResolveHourlyRate(t *Teacher) float64 {
	if t == nil || t.HourlyRate <= 0 {
		return DefaultHourlyRate
	}
	return t.HourlyRate
}
