package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

const maxWebhookBody = 256 << 10

// WebhookHandler receives provider deliveries
type WebhookHandler struct {
	webhooks usecase.WebhookUseCase
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(webhooks usecase.WebhookUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks, logger: logger}
}

// Receive handles POST /api/webhooks/:provider. The raw body is passed through
// untouched because providers authenticate it as sent.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		abortInvalid(c, err)
		return
	}
	if len(body) > maxWebhookBody {
		_ = c.Error(fmt.Errorf("%w: body exceeds %d bytes", errs.ErrInvalidWebhookPayload, maxWebhookBody))
		return
	}

	result, err := h.webhooks.HandleWebhook(c.Request.Context(), c.Param("provider"), c.Request.Header, body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Received:   true,
		Result:     string(result.Result),
		ExternalID: result.ExternalID,
		Status:     string(result.Status),
	})
}
