package app

import (
	"time"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/config"
	"hrms-backend/internal/department"
	"hrms-backend/internal/employee"
	"hrms-backend/internal/leave"
	"hrms-backend/internal/messaging/kafka"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/notification"
	"hrms-backend/internal/system"
	"hrms-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
) {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	hasher := user.NewBcryptHasher()

	// --- Services ---
	authService := auth.NewService(userRepo, employeeRepo, hasher)
	departmentService := department.NewService(departmentRepo, rdb)
	notificationService := notification.NewService(notificationRepo)
	employeeService := employee.NewService(employeeRepo, userRepo, hasher, outboxRepo)
	leaveService := leave.NewService(leaveRepo, employeeRepo, departmentRepo, notificationService, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	notificationHandler := notification.NewHandler(notificationService)
	systemHandler := system.NewHandler(*cfg, db)

	// --- Middleware ---
	router.Use(middleware.RequestID(zap.L()))
	authn := middleware.Authenticate(authService)
	loginLimiter := middleware.RateLimitByIP(rate.Every(time.Second), 5)
	idempotency := middleware.Idempotency(rdb)

	// --- Routes ---
	root := router.Group("")
	{
		system.RegisterRoutes(root, systemHandler)
		auth.RegisterRoutes(root, authHandler, authn, loginLimiter)
		department.RegisterRoutes(root, departmentHandler, authn)
		employee.RegisterRoutes(root, employeeHandler, authn)
		leave.RegisterRoutes(root, leaveHandler, authn, idempotency)
		notification.RegisterRoutes(root, notificationHandler, authn)
	}
}
