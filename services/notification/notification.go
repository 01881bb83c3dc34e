package notification

import (
	"context"
	"fmt"

	"teacherdekho/services/student"
	"teacherdekho/services/teacher"
	"teacherdekho/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendStudentPush(ctx context.Context, studentID, title, body string, data map[string]string) error
	SendTeacherPush(ctx context.Context, teacherID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Students student.StudentService
	Teachers teacher.TeacherService
}

func NewDefaultNotificationService(studentSvc student.StudentService, teacherSvc teacher.TeacherService) (*DefaultNotificationService, error) {
	if studentSvc == nil || teacherSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: student or teacher service is nil")
	}
	return &DefaultNotificationService{Students: studentSvc, Teachers: teacherSvc}, nil
}

// SendStudentPush looks up a student's FCM token and sends a push.
func (s *DefaultNotificationService) SendStudentPush(ctx context.Context, studentID, title, body string, data map[string]string) error {
	st, err := s.Students.GetByID(studentID)
	if err != nil {
		return fmt.Errorf("SendStudentPush: could not find student %s: %w", studentID, err)
	}
	if st.FCMToken == "" {
		return fmt.Errorf("SendStudentPush: student %s has no FCM token", studentID)
	}
	return send(ctx, st.FCMToken, title, body, data)
}

// SendTeacherPush looks up a teacher's FCM token and sends a push.
func (s *DefaultNotificationService) SendTeacherPush(ctx context.Context, teacherID, title, body string, data map[string]string) error {
	t, err := s.Teachers.GetByID(teacherID)
	if err != nil {
		return fmt.Errorf("SendTeacherPush: could not find teacher %s: %w", teacherID, err)
	}
	if t.FCMToken == "" {
		return fmt.Errorf("SendTeacherPush: teacher %s has no FCM token", teacherID)
	}
	return send(ctx, t.FCMToken, title, body, data)
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	logger := utils.GetLogger()
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	logger.Debug("push sent", zap.String("messageID", id))
	return nil
}
