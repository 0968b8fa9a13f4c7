package notification

import "time"

type NotificationResponse struct {
	ID         string    `json:"_id"`
	UserID     *string   `json:"user_id"`
	Audience   *string   `json:"audience"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	EntityType *string   `json:"entity_type"`
	EntityID   *string   `json:"entity_id"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
