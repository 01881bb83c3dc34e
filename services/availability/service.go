package availability

import (
	teacherRepo "teacherdekho/database/repository/teacher"
	"teacherdekho/models"
	"teacherdekho/utils"

	"go.uber.org/zap"
)

// AvailabilityService loads and saves a teacher's weekly availability. Edits
// happen client-side against the pure operations in this package; Save is the
// single document-field write.
type AvailabilityService interface {
	Get(teacherID string) (models.WeeklyAvailability, error)
	Save(teacherID string, av models.WeeklyAvailability) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo teacherRepo.TeacherRepository
}

func (s *DefaultAvailabilityService) Get(teacherID string) (models.WeeklyAvailability, error) {
	teacher, err := s.Repo.GetByID(teacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Availability == nil {
		return models.NewWeeklyAvailability(), nil
	}
	return teacher.Availability, nil
}

// Save validates every stored slot at the boundary and writes the whole
// structure in one update. There is no retry: on failure the caller shows a
// banner and the local editor state stays authoritative for the session.
func (s *DefaultAvailabilityService) Save(teacherID string, av models.WeeklyAvailability) error {
	logger := utils.GetLogger()

	for day, ds := range av {
		if _, err := models.ParseWeekday(string(day)); err != nil {
			return newValidationError("unknown weekday %q", day)
		}
		for _, slot := range ds.Slots {
			if err := validateSlot(slot); err != nil {
				return err
			}
		}
	}

	if err := s.Repo.SetAvailability(teacherID, av); err != nil {
		logger.Error("availability save failed", zap.String("teacherID", teacherID), zap.Error(err))
		return err
	}
	logger.Info("availability saved", zap.String("teacherID", teacherID))
	return nil
}
