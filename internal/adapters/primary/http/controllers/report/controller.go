package reportController

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	reportUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader identifies the caller. Authentication itself lives at the
// gateway; this service trusts the header.
const UserIDHeader = "X-User-ID"

type ReportController struct {
	service *reportUsecase.Service
	log     *slog.Logger
}

func New(reportService *reportUsecase.Service, log *slog.Logger) *ReportController {
	return &ReportController{
		service: reportService,
		log:     log,
	}
}

func (c *ReportController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/reports", c.createReport)
	api.GET("/reports/:id", c.getReport)
	api.POST("/guru", c.askGuru)
	api.POST("/compatibility", c.createCompatibility)
}

// createReport accepts birth data, stores a pending session and returns 202
func (c *ReportController) createReport(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req createReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	session, err := c.service.CreateSession(ctx.Request.Context(), userID, req.toBirthInput())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, session)
}

// getReport returns the session with its current status and result
func (c *ReportController) getReport(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := c.service.GetSession(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// askGuru answers a follow-up question within the paid quota
func (c *ReportController) askGuru(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req askGuruRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	answer, err := c.service.AskGuru(ctx.Request.Context(), userID, req.Question)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, answer)
}

// createCompatibility generates the one-per-payment compatibility reading
func (c *ReportController) createCompatibility(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req compatibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	reading, err := c.service.CreateCompatibility(ctx.Request.Context(), userID, req.toBirthInput())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reading)
}

// userID parses the caller id header, responding 401 when absent
func (c *ReportController) userID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.GetHeader(UserIDHeader)
	if raw == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}

	return userID, true
}

// respondError maps domain errors to HTTP statuses
func (c *ReportController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrPaymentRequired):
		ctx.JSON(http.StatusPaymentRequired, gin.H{"error": "payment required"})
	case errors.Is(err, domain.ErrQuotaExceeded):
		ctx.JSON(http.StatusPaymentRequired, gin.H{"error": "quota exceeded"})
	case domain.IsBusinessError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.log.Error("request failed", "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
