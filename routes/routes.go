package routes

import (
	"net/http"
	"time"

	"teacherdekho/handlers"
	"teacherdekho/middleware"
	"teacherdekho/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStudentRoutes registers student account endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.POST("/register", hb.Students.Register)
		api.POST("/login", hb.Students.Login)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		api.GET("/me", hb.Students.GetProfile)
		api.PUT("/me", hb.Students.UpdateProfile)
		api.DELETE("/me", hb.Students.Delete)
		api.POST("/logout", hb.Students.Logout)
		api.PUT("/fcm-token", hb.Students.UpdateFCMToken)
	}
}

// RegisterTeacherRoutes registers teacher account and KYC endpoints.
func RegisterTeacherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/teachers")
	{
		api.POST("/register", hb.Teachers.Register)
		api.POST("/login", hb.Teachers.Login)

		// Profile reads work with or without a token; extra fields show up
		// for the owner.
		api.GET("/id/:teacherID", middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, true), hb.Teachers.GetProfile)
		api.GET("/id/:teacherID/availability", hb.Availability.Get)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, false))
		protected.PUT("/me", hb.Teachers.UpdateProfile)
		protected.DELETE("/me", hb.Teachers.Delete)
		protected.POST("/logout", hb.Teachers.Logout)
		protected.PUT("/fcm-token", hb.Teachers.UpdateFCMToken)
		protected.POST("/kyc", hb.Teachers.SubmitKYC)
		protected.PUT("/kyc/:teacherID/status", hb.Teachers.SetKYCStatus)
		protected.GET("/kyc/:teacherID/documents", hb.Teachers.GetKYCDocuments)
	}
}

// RegisterAvailabilityRoutes registers the weekly availability editor.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/hours", hb.Availability.HourOptions)

		api.Use(middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, false))
		api.PUT("", hb.Availability.Save)
		api.POST("/toggle-day", hb.Availability.ToggleDay)
		api.POST("/slots", hb.Availability.AddSlot)
		api.DELETE("/slots", hb.Availability.RemoveSlot)
		api.PATCH("/slots", hb.Availability.SetSlotTime)
		api.POST("/master", hb.Availability.ApplyMaster)
	}
}

// RegisterSearchRoutes registers teacher discovery.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.POST("/teachers", hb.Search.Search)
	}
}

// RegisterEnrollmentRoutes registers the enrollment wizard and quick flow.
func RegisterEnrollmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/enroll")
	{
		api.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		api.POST("/drafts", hb.Enrollment.StartDraft)
		api.GET("/drafts/:draftID", hb.Enrollment.GetDraft)
		api.PUT("/drafts/:draftID/plan", hb.Enrollment.SelectPlan)
		api.POST("/drafts/:draftID/advance", hb.Enrollment.Advance)
		api.POST("/drafts/:draftID/retreat", hb.Enrollment.Retreat)
		api.PUT("/drafts/:draftID/preset", hb.Enrollment.SelectPreset)
		api.POST("/drafts/:draftID/toggle-day", hb.Enrollment.ToggleWeekday)
		api.PUT("/drafts/:draftID/course", hb.Enrollment.SetCourseDetails)
		api.PUT("/drafts/:draftID/schedule", hb.Enrollment.SetSchedule)
		api.POST("/drafts/:draftID/members", hb.Enrollment.AddMember)
		api.DELETE("/drafts/:draftID/members", hb.Enrollment.RemoveMember)
		api.POST("/drafts/:draftID/submit", hb.Enrollment.Submit)
		api.DELETE("/drafts/:draftID", hb.Enrollment.Cancel)

		api.GET("/quick/:teacherID/options", hb.Enrollment.QuickOptions)
		api.PUT("/drafts/:draftID/quick-schedule", hb.Enrollment.SetQuickSchedule)
		api.POST("/drafts/:draftID/checkout", hb.Enrollment.BuildCheckout)
	}
}

// RegisterBookingRoutes registers the post-submission booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	student := r.Group("/api/bookings")
	{
		student.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		student.GET("/mine", hb.Bookings.ListForStudent)
		student.GET("/:bookingID", hb.Bookings.Get)
		student.POST("/:bookingID/payment-intent", hb.Bookings.CreatePaymentIntent)
		student.POST("/:bookingID/paid", hb.Bookings.MarkPaid)
	}

	teacher := r.Group("/api/teacher-bookings")
	{
		teacher.Use(middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, false))
		teacher.GET("/mine", hb.Bookings.ListForTeacher)
		teacher.POST("/:bookingID/accept", hb.Bookings.Accept)
		teacher.POST("/:bookingID/reject", hb.Bookings.Reject)
	}
}

// RegisterBatchRoutes registers group-class batches.
func RegisterBatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/batches")
	{
		api.GET("", hb.Batches.List)
		api.GET("/:batchID", hb.Batches.Get)

		student := api.Group("")
		student.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		student.POST("/:batchID/enroll", hb.Batches.Enroll)

		teacher := api.Group("")
		teacher.Use(middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, false))
		teacher.POST("", hb.Batches.Create)
		teacher.GET("/mine", hb.Batches.ListMine)
		teacher.DELETE("/:batchID", hb.Batches.Delete)
	}
}

// RegisterRequestRoutes registers the tuition request board.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.GET("/open", middleware.JWTAuthTeacherMiddleware(hb.TeacherRepo, true), hb.Requests.ListOpen)

		student := api.Group("")
		student.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		student.POST("", hb.Requests.Create)
		student.GET("/mine", hb.Requests.ListMine)
		student.POST("/:requestID/close", hb.Requests.Close)
		student.DELETE("/:requestID", hb.Requests.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterStudentRoutes(r, hb)
	RegisterTeacherRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterEnrollmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterBatchRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterHealthRoute(r)
}
