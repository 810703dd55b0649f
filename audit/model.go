// console/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Activity is one backend call worth keeping: a mutation or a failure.
type Activity struct {
	Timestamp     time.Time       `json:"timestamp"`
	Username      string          `json:"username,omitempty"`
	Action        string          `json:"action"`
	ResourceType  string          `json:"resource_type"`
	ResourceID    string          `json:"resource_id,omitempty"`
	Method        string          `json:"method"`
	Path          string          `json:"path"`
	Status        int             `json:"status"`
	Success       bool            `json:"success"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Details       json.RawMessage `json:"details,omitempty"`
}

// ActivityQuery filters activities. Empty fields match everything.
type ActivityQuery struct {
	From         time.Time
	To           time.Time
	Username     string
	ResourceType string
	Size         int
}
