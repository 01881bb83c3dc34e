// File: teacherdekho/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teacherdekho/config"
	"teacherdekho/database"
	batchRepoPkg "teacherdekho/database/repository/batch"
	bookingRepoPkg "teacherdekho/database/repository/booking"
	requestRepoPkg "teacherdekho/database/repository/request"
	studentRepoPkg "teacherdekho/database/repository/student"
	teacherRepoPkg "teacherdekho/database/repository/teacher"
	"teacherdekho/handlers"
	"teacherdekho/routes"
	"teacherdekho/services/availability"
	bookingService "teacherdekho/services/booking"
	"teacherdekho/services/enroll"
	"teacherdekho/services/notification"
	"teacherdekho/services/search"
	studentService "teacherdekho/services/student"
	teacherService "teacherdekho/services/teacher"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	teacherRepo := teacherRepoPkg.NewMongoTeacherRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	batchRepo := batchRepoPkg.NewMongoBatchRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()

	if err := teacherRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure teacher indexes: %v", err)
	}

	// services.
	teacherSvc := &teacherService.DefaultTeacherService{
		Repo:    teacherRepo,
		Storage: cloudinaryStorageService,
	}
	studentSvc := &studentService.DefaultStudentService{
		Repo: studentRepo,
	}

	notificationSvc, err := notification.NewDefaultNotificationService(studentSvc, teacherSvc)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	enrollSvc := &enroll.DefaultEnrollmentService{
		Drafts:      enroll.NewRedisDraftStore(utils.GetDraftCacheClient()),
		TeacherRepo: teacherRepo,
		StudentRepo: studentRepo,
		BookingRepo: bookingRepo,
	}
	availabilitySvc := &availability.DefaultAvailabilityService{
		Repo: teacherRepo,
	}
	searchSvc := &search.DefaultSearchService{
		Repo:  teacherRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingSvc := &bookingService.DefaultBookingService{
		Repo:     bookingRepo,
		Notifier: notificationSvc,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TeacherRepo: teacherRepo,
		StudentRepo: studentRepo,

		Teachers:     handlers.NewTeacherHandler(teacherSvc, logger),
		Students:     handlers.NewStudentHandler(studentSvc, logger),
		Enrollment:   handlers.NewEnrollmentHandler(enrollSvc, logger),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc, logger),
		Search:       handlers.NewSearchHandler(searchSvc, logger),
		Bookings:     handlers.NewBookingHandler(bookingSvc, logger),
		Batches:      handlers.NewBatchHandler(batchRepo, logger),
		Requests:     handlers.NewRequestHandler(requestRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetDraftCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
