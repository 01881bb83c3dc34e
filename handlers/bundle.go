// File: teacherdekho/handlers/bundle.go
package handlers

import (
	studentRepoPkg "teacherdekho/database/repository/student"
	teacherRepoPkg "teacherdekho/database/repository/teacher"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos ride
// along because the auth middleware needs them for pinned-token lookups.
type HandlerBundle struct {
	TeacherRepo teacherRepoPkg.TeacherRepository
	StudentRepo studentRepoPkg.StudentRepository

	Teachers     *TeacherHandler
	Students     *StudentHandler
	Enrollment   *EnrollmentHandler
	Availability *AvailabilityHandler
	Search       *SearchHandler
	Bookings     *BookingHandler
	Batches      *BatchHandler
	Requests     *RequestHandler
}
