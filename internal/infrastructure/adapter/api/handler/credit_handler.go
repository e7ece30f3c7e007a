package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// CreditHandler serves the usage side of the ledger
type CreditHandler struct {
	credits usecase.CreditUseCase
	logger  coreport.Logger
}

// NewCreditHandler creates a new credit handler instance
func NewCreditHandler(credits usecase.CreditUseCase, logger coreport.Logger) *CreditHandler {
	return &CreditHandler{credits: credits, logger: logger}
}

// GetBalance handles GET /api/credits
func (h *CreditHandler) GetBalance(c *gin.Context) {
	balance, err := h.credits.GetBalance(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Credits: balance})
}

// CheckCredits handles GET /api/credits/check?action=
func (h *CreditHandler) CheckCredits(c *gin.Context) {
	action := c.Query("action")
	if action == "" {
		_ = c.Error(fmt.Errorf("%w: action is required", errs.ErrInvalidRequest))
		return
	}

	sufficient, balance, err := h.credits.CheckCredits(c.Request.Context(), middleware.UserID(c), action)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckCreditsResponse{
		Action:     action,
		Credits:    balance,
		Sufficient: sufficient,
	})
}

// Deduct handles POST /api/credits/deduct
func (h *CreditHandler) Deduct(c *gin.Context) {
	var req dto.DeductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err)
		return
	}

	result, err := h.credits.Deduct(c.Request.Context(), middleware.UserID(c), req.Action, req.SessionID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.DeductResponse{
		Action:    result.Action,
		Deducted:  result.Deducted,
		Remaining: result.Remaining,
	})
}

// History handles GET /api/credits/history
func (h *CreditHandler) History(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rows, err := h.credits.History(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.UsageResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, dto.UsageResponse{
			ID:            u.ID,
			Kind:          string(u.Kind),
			Credits:       u.Credits,
			Action:        u.Action,
			TransactionID: u.TransactionID,
			SessionID:     u.SessionID,
			BalanceAfter:  u.BalanceAfter,
			CreatedAt:     u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

// Audit handles GET /api/credits/audit
func (h *CreditHandler) Audit(c *gin.Context) {
	audit, err := h.credits.Audit(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !audit.Consistent {
		h.logger.Error("Ledger audit mismatch", map[string]any{
			"user_id":       audit.UserID,
			"balance":       audit.Balance,
			"reconstructed": audit.Reconstructed,
		})
	}

	c.JSON(http.StatusOK, dto.AuditResponse{
		Balance:       audit.Balance,
		Granted:       audit.Granted,
		Debited:       audit.Debited,
		Reconstructed: audit.Reconstructed,
		Consistent:    audit.Consistent,
	})
}
