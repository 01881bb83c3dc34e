package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCatalog(t *testing.T) {
	tests := []struct {
		planType PlanType
		sessions int
		days     int
	}{
		{PlanSilver, 12, 3},
		{PlanGold, 24, 6},
		{PlanPlatinum, 28, 7},
	}
	for _, tc := range tests {
		t.Run(string(tc.planType), func(t *testing.T) {
			p, err := PlanByType(tc.planType)
			require.NoError(t, err)
			assert.Equal(t, tc.sessions, p.SessionsPerMonth)
			assert.Equal(t, tc.days, p.RequiredDays)
		})
	}

	_, err := PlanByType("diamond")
	assert.Error(t, err)
}

func TestAllPlansTierOrder(t *testing.T) {
	plans := AllPlans()
	require.Len(t, plans, 3)
	assert.Equal(t, PlanSilver, plans[0].Type)
	assert.Equal(t, PlanGold, plans[1].Type)
	assert.Equal(t, PlanPlatinum, plans[2].Type)
}

func TestMonthlyPrice(t *testing.T) {
	silver, _ := PlanByType(PlanSilver)
	gold, _ := PlanByType(PlanGold)
	platinum, _ := PlanByType(PlanPlatinum)

	assert.InDelta(t, 6000, silver.MonthlyPrice(500), 0.001)
	assert.InDelta(t, 11400, gold.MonthlyPrice(500), 0.001)
	assert.InDelta(t, 12600, platinum.MonthlyPrice(500), 0.001)
}

func TestResolveHourlyRate(t *testing.T) {
	assert.Equal(t, float64(DefaultHourlyRate), ResolveHourlyRate(nil))
	assert.Equal(t, float64(DefaultHourlyRate), ResolveHourlyRate(&Teacher{}))
	assert.Equal(t, float64(DefaultHourlyRate), ResolveHourlyRate(&Teacher{HourlyRate: -10}))
	assert.Equal(t, 850.0, ResolveHourlyRate(&Teacher{HourlyRate: 850}))
}

func TestListingResolvesRateAndKYC(t *testing.T) {
	teacher := &Teacher{ID: "t1", Name: "Ravi Kumar", KYC: KYCInfo{Status: KYCVerified}}
	listing := teacher.Listing()
	assert.Equal(t, float64(DefaultHourlyRate), listing.HourlyRate)
	assert.True(t, listing.KYCVerified)

	teacher.KYC.Status = KYCPending
	assert.False(t, teacher.Listing().KYCVerified)
}
