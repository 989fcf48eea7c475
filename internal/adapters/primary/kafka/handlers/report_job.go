package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"

	kafkaPorts "github.com/AndreaVaz0608/skyai/internal/ports/kafka"
	reportUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/report"
)

// ReportJobHandler processes report job descriptors from the job topic
type ReportJobHandler struct {
	ReportService *reportUsecase.Service
	Log           *slog.Logger
}

// NewReportJobHandler creates a handler for report jobs
func NewReportJobHandler(reportService *reportUsecase.Service, log *slog.Logger) kafkaPorts.MessageHandler {
	return &ReportJobHandler{
		ReportService: reportService,
		Log:           log,
	}
}

// ReportJobMessage is the job descriptor
type ReportJobMessage struct {
	SessionID string `json:"session_id"`
}

// HandleMessage decodes the descriptor and runs the pipeline for the session
func (h *ReportJobHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var job ReportJobMessage
	if err := json.Unmarshal(value, &job); err != nil {
		return domain.NewBusinessError(fmt.Errorf("failed to unmarshal report job: %w", err))
	}

	sessionID, err := uuid.Parse(job.SessionID)
	if err != nil {
		return domain.NewBusinessError(fmt.Errorf("invalid session_id: %w", err))
	}

	h.Log.Debug("processing report job", "session_id", sessionID)

	if err := h.ReportService.ProcessSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to process session: %w", err)
	}

	return nil
}
