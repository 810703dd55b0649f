// console/util/notification_service.go

package util

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const (
	DefaultNotificationDuration = 5 * time.Second
	// DismissAllID is the ID carried by the event DismissAll emits.
	DismissAllID = "*"

	subscriberBuffer = 64
)

type NotificationEventKind string

const (
	NotificationShown     NotificationEventKind = "shown"
	NotificationDismissed NotificationEventKind = "dismissed"
)

// NotificationEvent is what subscribers receive. Notification is set for
// shown events; ID is set for dismissed events.
type NotificationEvent struct {
	Kind         NotificationEventKind
	Notification *model.Notification
	ID           string
}

type activeNotification struct {
	notification model.Notification
	timer        *time.Timer
}

// NotificationService is the process-wide toast registry. Every shown and
// dismissed notification is broadcast to all subscribers in order.
type NotificationService struct {
	mu              sync.Mutex
	defaultDuration time.Duration
	active          map[string]*activeNotification
	order           []string
	subscribers     map[int]chan NotificationEvent
	nextSubscriber  int
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		defaultDuration: DefaultNotificationDuration,
		active:          make(map[string]*activeNotification),
		subscribers:     make(map[int]chan NotificationEvent),
	}
}

// Subscribe returns a channel of notification events and a function that
// cancels the subscription and closes the channel. A subscriber that falls
// behind loses events rather than blocking the service.
func (n *NotificationService) Subscribe() (<-chan NotificationEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextSubscriber
	n.nextSubscriber++
	ch := make(chan NotificationEvent, subscriberBuffer)
	n.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subscribers, id)
			close(ch)
		})
	}
}

// Show builds a notification from cfg, broadcasts it and schedules its
// removal when its duration is positive. It returns the notification ID.
func (n *NotificationService) Show(cfg model.NotificationConfig) string {
	notification := model.Notification{
		ID:          "notification-" + uuid.New().String(),
		Type:        cfg.Type,
		Title:       cfg.Title,
		Message:     cfg.Message,
		Duration:    n.defaultDuration,
		Dismissible: true,
		Timestamp:   time.Now(),
	}
	if notification.Type == "" {
		notification.Type = model.NotificationInfo
	}
	if cfg.Duration != nil {
		notification.Duration = *cfg.Duration
	}
	if cfg.Dismissible != nil {
		notification.Dismissible = *cfg.Dismissible
	}

	n.mu.Lock()
	entry := &activeNotification{notification: notification}
	n.active[notification.ID] = entry
	n.order = append(n.order, notification.ID)
	shown := notification
	n.broadcastLocked(NotificationEvent{Kind: NotificationShown, Notification: &shown, ID: notification.ID})
	if notification.Duration > 0 {
		id := notification.ID
		entry.timer = time.AfterFunc(notification.Duration, func() {
			n.Dismiss(id)
		})
	}
	n.mu.Unlock()

	logger.Debug("Notification shown",
		zap.String("id", notification.ID),
		zap.String("type", string(notification.Type)),
		zap.String("title", notification.Title))
	return notification.ID
}

func (n *NotificationService) Success(title, message string) string {
	return n.Show(model.NotificationConfig{Type: model.NotificationSuccess, Title: title, Message: message})
}

// Error notifications are sticky: they stay until dismissed.
func (n *NotificationService) Error(title, message string) string {
	sticky := time.Duration(0)
	return n.Show(model.NotificationConfig{Type: model.NotificationError, Title: title, Message: message, Duration: &sticky})
}

func (n *NotificationService) Warning(title, message string) string {
	return n.Show(model.NotificationConfig{Type: model.NotificationWarning, Title: title, Message: message})
}

func (n *NotificationService) Info(title, message string) string {
	return n.Show(model.NotificationConfig{Type: model.NotificationInfo, Title: title, Message: message})
}

// Dismiss removes a notification. Unknown IDs are ignored.
func (n *NotificationService) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	entry, ok := n.active[id]
	if !ok {
		return
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	delete(n.active, id)
	for i, existing := range n.order {
		if existing == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	n.broadcastLocked(NotificationEvent{Kind: NotificationDismissed, ID: id})
}

func (n *NotificationService) DismissAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, entry := range n.active {
		if entry.timer != nil {
			entry.timer.Stop()
		}
	}
	n.active = make(map[string]*activeNotification)
	n.order = nil
	n.broadcastLocked(NotificationEvent{Kind: NotificationDismissed, ID: DismissAllID})
}

// Active returns the notifications currently shown, oldest first.
func (n *NotificationService) Active() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]model.Notification, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.active[id].notification)
	}
	return out
}

func (n *NotificationService) broadcastLocked(event NotificationEvent) {
	for id, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			logger.Warn("Notification subscriber is full, dropping event",
				zap.Int("subscriber", id),
				zap.String("eventKind", string(event.Kind)),
				zap.String("notificationID", event.ID))
		}
	}
}
