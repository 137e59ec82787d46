package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// ActivityLogUseCase registra la actividad de las mutaciones (método, ruta,
// payload) en un log append-only. Es best-effort: un fallo al escribir el log
// jamás afecta el resultado de la operación principal.
type ActivityLogUseCase struct {
	repo repository.LogRepository
}

// NewActivityLogUseCase construye el caso de uso.
func NewActivityLogUseCase(repo repository.LogRepository) *ActivityLogUseCase {
	return &ActivityLogUseCase{repo: repo}
}

// Record escribe una entrada de log. Los handlers la invocan después de que la
// operación principal tuvo éxito; el error se traga y solo se loguea en warn.
func (uc *ActivityLogUseCase) Record(method, action string, payload []byte) {
	info := json.RawMessage(payload)
	if !json.Valid(payload) {
		info = nil
	}
	entry := &entity.Log{
		ID:        uuid.New().String(),
		Action:    action,
		Method:    method,
		Info:      info,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		log.Warn().Err(err).Str("method", method).Str("action", action).Msg("no se pudo escribir el log de actividad")
	}
}

// List lista las entradas del log, más recientes primero.
func (uc *ActivityLogUseCase) List(limit, offset int) (*dto.LogListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LogResponse{
			ID:        l.ID,
			Action:    l.Action,
			Method:    l.Method,
			Info:      l.Info,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.LogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
