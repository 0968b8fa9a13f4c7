package system

import (
	"net/http"

	"hrms-backend/internal/config"
	"hrms-backend/internal/department"
	"hrms-backend/internal/employee"
	"hrms-backend/internal/leave"
	"hrms-backend/internal/notification"
	"hrms-backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the root banner, the static schema listing and a connectivity
// diagnostic used when wiring up an environment.
type Handler struct {
	cfg    config.Config
	db     *mongo.Database
	logger *zap.Logger
}

func NewHandler(cfg config.Config, db *mongo.Database, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("system.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("system.handler")
	}
	return &Handler{cfg: cfg, db: db, logger: l}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HRMS Backend Running"})
}

func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"models": []string{"UserAccount", "Department", "Employee", "LeaveRequest", "Notification"},
	})
}

// Test reports whether the store configuration is present and whether the
// database answers. It never fails the request; problems show up in the body.
func (h *Handler) Test(c *gin.Context) {
	result := gin.H{
		"database_url_set":  h.cfg.DatabaseURL != "",
		"database_name_set": h.cfg.DatabaseName != "",
		"database_name":     h.cfg.MongoDatabase(),
	}

	ctx := c.Request.Context()
	if err := h.db.Client().Ping(ctx, nil); err != nil {
		h.logger.Warn("diagnostic ping failed", zap.Error(err))
		result["connection_status"] = "Not Connected"
		result["error"] = err.Error()
		c.JSON(http.StatusOK, result)
		return
	}
	result["connection_status"] = "Connected"

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.logger.Warn("diagnostic list collections failed", zap.Error(err))
		result["collections_error"] = err.Error()
		c.JSON(http.StatusOK, result)
		return
	}
	result["collections"] = names
	result["expected_collections"] = []string{
		user.Collection,
		department.Collection,
		employee.Collection,
		leave.Collection,
		notification.Collection,
	}

	c.JSON(http.StatusOK, result)
}
