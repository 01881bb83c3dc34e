package enroll

import (
	"testing"

	"teacherdekho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeacher(rate float64) *models.Teacher {
	return &models.Teacher{ID: "teacher-1", Name: "Ravi Kumar", HourlyRate: rate}
}

func TestStartResolvesHourlyRateOnce(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{name: "profile rate", rate: 800, want: 800},
		{name: "missing rate falls back to default", rate: 0, want: models.DefaultHourlyRate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(testTeacher(tc.rate))
			draft, err := svc.Start("student-1", "teacher-1")
			require.NoError(t, err)
			assert.Equal(t, models.StepPlanSelection, draft.Step)
			assert.Equal(t, tc.want, draft.HourlyRate)
		})
	}
}

func TestStartUnknownTeacher(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	_, err := svc.Start("student-1", "no-such-teacher")
	assert.True(t, IsValidation(err))
}

func TestSelectPlanPlatinumFillsAllDays(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.SelectPlan(draft.DraftID, models.PlanPlatinum)
	require.NoError(t, err)
	assert.Equal(t, models.AllWeekdays, draft.SelectedDays)
	assert.Equal(t, models.PresetNone, draft.Preset)

	// Toggling under platinum is a no-op: the set stays full.
	draft, err = svc.ToggleWeekday(draft.DraftID, models.Monday)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedDays, 7)
}

func TestSelectPlanDownsizeClearsOversizedSelection(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.SelectPlan(draft.DraftID, models.PlanPlatinum)
	require.NoError(t, err)
	require.Len(t, draft.SelectedDays, 7)

	// 7 selected days no longer fit a 3-day plan.
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanSilver)
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedDays)
}

func TestSelectPlanRecomputesMonthlyPrice(t *testing.T) {
	svc, _ := newTestService(testTeacher(600))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)
	assert.InDelta(t, 600*24*0.95, draft.MonthlyPrice, 0.001)
}

func TestSelectPlanUnknown(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	_, err = svc.SelectPlan(draft.DraftID, models.PlanType("diamond"))
	assert.True(t, IsValidation(err))
}

func TestSelectPresetSilverOnly(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)

	_, err = svc.SelectPreset(draft.DraftID, models.PresetMWF)
	assert.True(t, IsValidation(err))
}

func TestSelectPresetSetsDays(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanSilver)
	require.NoError(t, err)

	draft, err = svc.SelectPreset(draft.DraftID, models.PresetMWF)
	require.NoError(t, err)
	assert.Equal(t, []models.Weekday{models.Monday, models.Wednesday, models.Friday}, draft.SelectedDays)

	draft, err = svc.SelectPreset(draft.DraftID, models.PresetTTS)
	require.NoError(t, err)
	assert.Equal(t, []models.Weekday{models.Tuesday, models.Thursday, models.Saturday}, draft.SelectedDays)

	// Custom empties the set and unlocks manual toggling.
	draft, err = svc.SelectPreset(draft.DraftID, models.PresetCustom)
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedDays)
}

func TestToggleWeekdayIgnoredUnderSilverPreset(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanSilver)
	require.NoError(t, err)
	draft, err = svc.SelectPreset(draft.DraftID, models.PresetMWF)
	require.NoError(t, err)

	draft, err = svc.ToggleWeekday(draft.DraftID, models.Sunday)
	require.NoError(t, err)
	assert.Equal(t, []models.Weekday{models.Monday, models.Wednesday, models.Friday}, draft.SelectedDays)
}

func TestToggleWeekdayIgnoredOnFreshSilver(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanSilver)
	require.NoError(t, err)

	// No preset chosen yet: toggling is a no-op until custom unlocks it.
	draft, err = svc.ToggleWeekday(draft.DraftID, models.Monday)
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedDays)
}

func TestToggleWeekdayGoldSeventhDayRejected(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)

	for _, day := range models.AllWeekdays[:6] {
		draft, err = svc.ToggleWeekday(draft.DraftID, day)
		require.NoError(t, err)
	}
	require.Len(t, draft.SelectedDays, 6)

	_, err = svc.ToggleWeekday(draft.DraftID, models.Sunday)
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "at most 6 days")

	draft, err = svc.Get(draft.DraftID)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedDays, 6)
}

func TestToggleWeekdayCustomCapsAtPlanDays(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	draft, err = svc.SelectPlan(draft.DraftID, models.PlanSilver)
	require.NoError(t, err)
	draft, err = svc.SelectPreset(draft.DraftID, models.PresetCustom)
	require.NoError(t, err)

	for _, day := range []models.Weekday{models.Monday, models.Tuesday, models.Wednesday} {
		draft, err = svc.ToggleWeekday(draft.DraftID, day)
		require.NoError(t, err)
	}
	require.Len(t, draft.SelectedDays, 3)

	// A fourth day is rejected and the set stays unchanged.
	_, err = svc.ToggleWeekday(draft.DraftID, models.Thursday)
	assert.True(t, IsValidation(err))
	draft, err = svc.Get(draft.DraftID)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedDays, 3)

	// Removing works regardless of the cap.
	draft, err = svc.ToggleWeekday(draft.DraftID, models.Tuesday)
	require.NoError(t, err)
	assert.Equal(t, []models.Weekday{models.Monday, models.Wednesday}, draft.SelectedDays)
}

func TestToggleWeekdayUnknownDay(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	_, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)

	_, err = svc.ToggleWeekday(draft.DraftID, models.Weekday("Funday"))
	assert.True(t, IsValidation(err))
}

func TestAdvanceWithoutPlanIsSilentNoop(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPlanSelection, draft.Step)
}

func TestAdvanceCourseDetailsNamesMissingFields(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	_, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)
	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	require.Equal(t, models.StepCourseDetails, draft.Step)

	_, err = svc.SetCourseDetails(draft.DraftID, "Maths", "", "", "")
	require.NoError(t, err)

	_, err = svc.Advance(draft.DraftID)
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "grade")
	assert.Contains(t, err.Error(), "topic")
	assert.NotContains(t, err.Error(), "subject")

	// The failed gate leaves the draft where it was.
	draft, err = svc.Get(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepCourseDetails, draft.Step)
}

func TestAdvanceScheduleRequiresExactDayCount(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	_, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)
	_, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	_, err = svc.SetCourseDetails(draft.DraftID, "Maths", "Class 10", "Trigonometry", "")
	require.NoError(t, err)
	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	require.Equal(t, models.StepSchedule, draft.Step)

	_, err = svc.Advance(draft.DraftID)
	assert.True(t, IsValidation(err), "missing date and slot should block")

	_, err = svc.SetSchedule(draft.DraftID, "2026-09-07", "18:00 - 19:00")
	require.NoError(t, err)
	for _, day := range []models.Weekday{models.Monday, models.Tuesday, models.Wednesday} {
		_, err = svc.ToggleWeekday(draft.DraftID, day)
		require.NoError(t, err)
	}

	// 3 of 6 required days.
	_, err = svc.Advance(draft.DraftID)
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "exactly 6 days")

	for _, day := range []models.Weekday{models.Thursday, models.Friday, models.Saturday} {
		_, err = svc.ToggleWeekday(draft.DraftID, day)
		require.NoError(t, err)
	}
	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, draft.Step)
}

func TestAdvanceAtReview(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft := completeDraftToReview(t, svc)

	_, err := svc.Advance(draft.DraftID)
	assert.ErrorIs(t, err, ErrAtReview)
}

func TestRetreatStopsAtFirstStep(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	draft, err = svc.Retreat(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPlanSelection, draft.Step)
}

func TestRetreatKeepsFields(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft := completeDraftToReview(t, svc)

	draft, err := svc.Retreat(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, draft.Step)
	assert.Equal(t, "Maths", draft.Subject)
	assert.Len(t, draft.SelectedDays, 6)

	// Everything is still valid, so advancing returns to review intact.
	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, draft.Step)
	assert.Equal(t, "2026-09-07", draft.Date)
}

func TestMembersAddAndRemove(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	_, err = svc.AddMember(draft.DraftID, "", "9876500000")
	assert.True(t, IsValidation(err))

	// Any non-empty phone string is accepted as given.
	draft, err = svc.AddMember(draft.DraftID, "Rohan", "not-a-number")
	require.NoError(t, err)
	draft, err = svc.AddMember(draft.DraftID, "Meera", "9876500001")
	require.NoError(t, err)
	require.Len(t, draft.Members, 2)

	_, err = svc.RemoveMember(draft.DraftID, 5)
	assert.True(t, IsValidation(err))

	draft, err = svc.RemoveMember(draft.DraftID, 0)
	require.NoError(t, err)
	require.Len(t, draft.Members, 1)
	assert.Equal(t, "Meera", draft.Members[0].Name)
}

func TestCancelDiscardsDraft(t *testing.T) {
	svc, _ := newTestService(testTeacher(500))
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(draft.DraftID))
	_, err = svc.Get(draft.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

// completeDraftToReview walks a gold draft through every step to review.
func completeDraftToReview(t *testing.T, svc *DefaultEnrollmentService) *models.EnrollmentDraft {
	t.Helper()
	draft, err := svc.Start("student-1", "teacher-1")
	require.NoError(t, err)
	_, err = svc.SelectPlan(draft.DraftID, models.PlanGold)
	require.NoError(t, err)
	_, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	_, err = svc.SetCourseDetails(draft.DraftID, "Maths", "Class 10", "Trigonometry", "Board prep")
	require.NoError(t, err)
	_, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	_, err = svc.SetSchedule(draft.DraftID, "2026-09-07", "18:00 - 19:00")
	require.NoError(t, err)
	for _, day := range []models.Weekday{
		models.Monday, models.Tuesday, models.Wednesday,
		models.Thursday, models.Friday, models.Saturday,
	} {
		_, err = svc.ToggleWeekday(draft.DraftID, day)
		require.NoError(t, err)
	}
	draft, err = svc.Advance(draft.DraftID)
	require.NoError(t, err)
	require.Equal(t, models.StepReview, draft.Step)
	return draft
}
