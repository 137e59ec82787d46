package entity

import (
	"encoding/json"
	"time"
)

// Log registra la actividad de las mutaciones: ruta, método y payload.
// Append-only; se escribe después de que la operación principal tuvo éxito.
type Log struct {
	ID        string
	Action    string // ruta del recurso afectado
	Method    string // POST, PUT, DELETE
	Info      json.RawMessage
	CreatedAt time.Time
}
