package discord

import (
	"time"

	"livefeedback/internal/ports/input"
	"livefeedback/internal/ports/output"
)

// Handler maps slash commands to use cases and renders their results.
type Handler struct {
	attendance input.AttendanceUseCase
	admin      input.AdminUseCase
	translator output.Translator
	location   *time.Location
}

// NewHandler creates a Handler. location names export files.
func NewHandler(
	attendance input.AttendanceUseCase,
	admin input.AdminUseCase,
	translator output.Translator,
	location *time.Location,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		attendance: attendance,
		admin:      admin,
		translator: translator,
		location:   location,
	}
}
