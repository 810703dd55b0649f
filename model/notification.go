package model

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message,omitempty"`
	Duration    time.Duration    `json:"duration"`
	Dismissible bool             `json:"dismissible"`
	Timestamp   time.Time        `json:"timestamp"`
}

// NotificationConfig is what callers pass to show a notification. Nil
// Duration and Dismissible pick the service defaults.
type NotificationConfig struct {
	Type        NotificationType
	Title       string
	Message     string
	Duration    *time.Duration
	Dismissible *bool
}

// MarshalJSON reports the duration in milliseconds, which is what the
// front end schedules its own timers with.
func (n Notification) MarshalJSON() ([]byte, error) {
	type alias Notification
	return json.Marshal(struct {
		alias
		Duration int64 `json:"duration"`
	}{alias: alias(n), Duration: n.Duration.Milliseconds()})
}
