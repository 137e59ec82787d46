package dto

import (
	"encoding/json"
	"time"
)

// LogResponse entrada del log de actividad.
type LogResponse struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	Method    string          `json:"method"`
	Info      json.RawMessage `json:"info"`
	CreatedAt time.Time       `json:"created_at"`
}

// LogListResponse lista paginada del log de actividad.
type LogListResponse struct {
	Items []LogResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
