package paymentController

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
	paymentUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/payment"
	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the webhook signature
const SignatureHeader = "X-Skyai-Signature"

type PaymentController struct {
	service  *paymentUsecase.Service
	verifier service.ISignatureVerifier
	log      *slog.Logger
}

func New(paymentService *paymentUsecase.Service, verifier service.ISignatureVerifier, log *slog.Logger) *PaymentController {
	return &PaymentController{
		service:  paymentService,
		verifier: verifier,
		log:      log,
	}
}

func (c *PaymentController) RegisterRoutes(r *gin.Engine) {
	r.POST("/stripe/webhook", c.webhook)
}

// webhook verifies the signature against the raw body, decodes the event
// and ingests it. Rejections return 400 so the provider stops retrying;
// infrastructure failures return 500 so it retries later.
func (c *PaymentController) webhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	if err := c.verifier.Verify(body, ctx.GetHeader(SignatureHeader)); err != nil {
		c.log.Warn("webhook signature rejected", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	var event domain.CheckoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.log.Warn("webhook body malformed", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
		return
	}

	outcome, err := c.service.IngestCheckoutEvent(ctx.Request.Context(), &event)
	if err != nil {
		var rejected *domain.PaymentRejectedError
		if errors.As(err, &rejected) {
			c.log.Warn("payment rejected", "reason", rejected.Reason)
			ctx.JSON(http.StatusBadRequest, gin.H{"error": rejected.Reason})
			return
		}

		c.log.Error("payment ingestion failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"outcome": string(outcome)})
}
