package enroll

import (
	"context"

	"teacherdekho/models"
)

// presetDays maps each silver preset to the day set it pins.
var presetDays = map[models.SchedulePreset][]models.Weekday{
	models.PresetMWF: {models.Monday, models.Wednesday, models.Friday},
	models.PresetTTS: {models.Tuesday, models.Thursday, models.Saturday},
}

// SelectPreset applies a silver schedule sub-option. The MWF and TTS presets
// set the day set directly; "custom" empties it and unlocks manual toggling.
func (s *DefaultEnrollmentService) SelectPreset(draftID string, preset models.SchedulePreset) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.PlanType != models.PlanSilver {
		return nil, newValidationError("schedule presets apply to the silver plan only")
	}

	switch preset {
	case models.PresetMWF, models.PresetTTS:
		draft.Preset = preset
		draft.SelectedDays = append([]models.Weekday(nil), presetDays[preset]...)
	case models.PresetCustom:
		draft.Preset = models.PresetCustom
		draft.SelectedDays = nil
	default:
		return nil, newValidationError("unknown schedule preset %q", preset)
	}

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ToggleWeekday adds or removes a day subject to the plan's policy:
//   - platinum: toggling is a no-op, the set stays at all seven days;
//   - silver without the custom preset: toggling is a no-op, presets own
//     the day set;
//   - gold and silver-custom: toggling works, but adding past the plan's
//     required-day cap is rejected with the set unchanged.
func (s *DefaultEnrollmentService) ToggleWeekday(draftID string, day models.Weekday) (*models.EnrollmentDraft, error) {
	ctx := context.Background()
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if _, err := models.ParseWeekday(string(day)); err != nil {
		return nil, newValidationError("unknown weekday %q", day)
	}

	switch draft.PlanType {
	case models.PlanPlatinum:
		return draft, nil
	case models.PlanSilver:
		if draft.Preset != models.PresetCustom {
			return draft, nil
		}
	}

	if draft.HasDay(day) {
		kept := draft.SelectedDays[:0]
		for _, d := range draft.SelectedDays {
			if d != day {
				kept = append(kept, d)
			}
		}
		draft.SelectedDays = kept
	} else {
		plan, perr := models.PlanByType(draft.PlanType)
		if perr != nil {
			return nil, newValidationError("please select a plan first")
		}
		if len(draft.SelectedDays) >= plan.RequiredDays {
			return nil, newValidationError("the %s plan allows at most %d days per week",
				plan.Type, plan.RequiredDays)
		}
		draft.SelectedDays = append(draft.SelectedDays, day)
	}

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
