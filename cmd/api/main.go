package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"arakkha-job-connect/internal/config"
	"arakkha-job-connect/internal/handler"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (resume upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	if err := services.Auth.CleanupExpiredSessions(context.Background()); err != nil {
		log.Printf("Failed to clean up expired sessions: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Get("/verify-email", h.Auth.VerifyEmail)
	auth.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	// Public read surface.
	v1.Get("/jobs", h.Job.List)
	v1.Get("/jobs/search", h.Job.Search)
	v1.Get("/legal/:slug", h.Legal.GetPage)

	public := v1.Group("/public")
	public.Get("/employers/:employerId", h.Employer.GetPublicProfile)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))
	protected.Delete("/auth/me", h.Auth.DeleteAccount)

	jobseekers := protected.Group("/jobseekers")
	jobseekers.Post("/profile", middleware.RequireRole("jobseeker"), h.Jobseeker.CreateProfile)
	jobseekers.Get("/profile", middleware.RequireRole("jobseeker"), h.Jobseeker.GetProfile)
	jobseekers.Put("/profile", middleware.RequireRole("jobseeker"), h.Jobseeker.UpdateProfile)
	jobseekers.Post("/resumes", middleware.RequireRole("jobseeker"), h.Jobseeker.UploadResume)
	jobseekers.Get("/resumes", middleware.RequireRole("jobseeker"), h.Jobseeker.ListResumes)
	jobseekers.Delete("/resumes/:resumeId", middleware.RequireRole("jobseeker"), h.Jobseeker.DeleteResume)

	employers := protected.Group("/employers")
	employers.Post("/profile", middleware.RequireRole("employer"), h.Employer.CreateProfile)
	employers.Get("/profile/me", middleware.RequireRole("employer"), h.Employer.GetProfile)
	employers.Put("/profile", middleware.RequireRole("employer"), h.Employer.UpdateProfile)
	employers.Get("/", h.Employer.List)
	employers.Get("/dashboard/me", middleware.RequireRole("employer"), h.Employer.Dashboard)

	jobs := protected.Group("/jobs")
	jobs.Post("/", middleware.RequireRole("employer"), h.Job.Create)
	jobs.Get("/all", middleware.RequireRole("admin"), h.Job.ListAll)
	jobs.Get("/mine", middleware.RequireRole("employer"), h.Job.ListMine)
	jobs.Get("/:jobId", h.Job.Get)
	jobs.Put("/:jobId", middleware.RequireRole("employer"), h.Job.Update)
	jobs.Delete("/:jobId", middleware.RequireRole("employer"), h.Job.Delete)
	jobs.Post("/:jobId/apply", middleware.RequireRole("jobseeker"), h.Application.Apply)
	jobs.Post("/:jobId/save", middleware.RequireRole("jobseeker"), h.SavedJob.Save)
	jobs.Get("/:jobId/save", middleware.RequireRole("jobseeker"), h.SavedJob.IsSaved)
	jobs.Delete("/:jobId/save", middleware.RequireRole("jobseeker"), h.SavedJob.Unsave)

	categories := protected.Group("/job-categories", middleware.RequireRole("employer"))
	categories.Post("/", h.Job.CreateCategory)
	categories.Get("/", h.Job.ListCategories)
	categories.Delete("/:categoryId", h.Job.DeleteCategory)

	applications := protected.Group("/applications")
	applications.Get("/mine", middleware.RequireRole("jobseeker"), h.Application.ListMine)
	applications.Get("/employer", middleware.RequireRole("employer"), h.Application.ListForEmployer)
	applications.Get("/employer/status-counts", middleware.RequireRole("employer"), h.Application.StatusCounts)
	applications.Get("/recent", middleware.RequireRole("admin"), h.Application.ListRecent)
	applications.Get("/:appId", h.Application.Get)
	applications.Post("/:appId/update-status", h.Application.UpdateStatus)
	applications.Delete("/:appId", h.Application.Withdraw)

	savedJobs := protected.Group("/saved-jobs", middleware.RequireRole("jobseeker"))
	savedJobs.Get("/", h.SavedJob.List)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/counts", h.Notification.Counts)
	notifications.Get("/:id", h.Notification.Get)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Patch("/:id/unread", h.Notification.MarkAsUnread)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/bulk", h.Notification.DeleteByReadState)
	notifications.Delete("/:id", h.Notification.Delete)

	legal := protected.Group("/legal", middleware.RequireRole("admin"))
	legal.Put("/:slug", h.Legal.UpsertPage)

	audit := protected.Group("/audit", middleware.RequireRole("admin"))
	audit.Get("/recent", h.Audit.GetRecentActivities)
	audit.Get("/:entityType/:entityId", h.Audit.ListByEntity)
}
