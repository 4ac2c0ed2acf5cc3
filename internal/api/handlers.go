package api

import (
	"time"

	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:       database,
		location: location,
	}
	handler.ensureDependencies()
	return handler
}
