package model

import (
	"encoding/json"
	"strconv"
)

// PaginatedResponse mirrors the backend's Spring Data page envelope.
type PaginatedResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

type PageRequest struct {
	Page int    `json:"page" form:"page"`
	Size int    `json:"size" form:"size"`
	Sort string `json:"sort,omitempty" form:"sort"`
}

// DefaultPage is the page request used when a caller does not supply one.
var DefaultPage = PageRequest{Page: 0, Size: 10}

// Signature is the stable cache-key form of a page request.
func (p PageRequest) Signature() string {
	s := "page=" + strconv.Itoa(p.Page) + "&size=" + strconv.Itoa(p.Size)
	if p.Sort != "" {
		s += "&sort=" + p.Sort
	}
	return s
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Timestamp     string            `json:"timestamp,omitempty"`
	Status        int               `json:"status"`
	Error         string            `json:"error,omitempty"`
	Message       string            `json:"message,omitempty"`
	Path          string            `json:"path,omitempty"`
	ErrorCode     string            `json:"errorCode,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty"`
	FieldErrors   map[string]string `json:"fieldErrors,omitempty"`
	Details       json.RawMessage   `json:"details,omitempty"`
}

type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

type DateRange struct {
	StartDate string `json:"startDate,omitempty" form:"startDate"`
	EndDate   string `json:"endDate,omitempty" form:"endDate"`
}
