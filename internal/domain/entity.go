package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityMeta идентичность и время создания сущности
// Встраивается во все доменные сущности вместо общего базового типа
type EntityMeta struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// NewEntityMeta создает метаданные новой сущности
func NewEntityMeta(now time.Time) EntityMeta {
	return EntityMeta{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
	}
}
