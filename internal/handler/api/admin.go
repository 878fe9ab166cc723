package api

import (
	"net/http"
	"strconv"

	reqdto "fulfillment-core/internal/handler/dto/request"
	resdto "fulfillment-core/internal/handler/dto/response"
	"fulfillment-core/internal/handler/httperr"
	"fulfillment-core/internal/infra"
	"fulfillment-core/internal/pkg/errs"
	"fulfillment-core/internal/usecase"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 50

type AdminHandler struct {
	admin *usecase.Admin
}

func NewAdminHandler(admin *usecase.Admin) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// @Summary Admin login
// @Description Login with the operator credentials
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.admin.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if cr.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: token})
}

// @Summary Reprocess a transaction
// @Description Re-run reconciliation for one transaction
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/transactions/{id}/reprocess [post]
func (h *AdminHandler) Reprocess(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID",
		})
		return
	}

	result, err := h.admin.Reprocess(c.Request.Context(), id)
	if err != nil {
		if cr.Is(err, errs.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reconciliation failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewReconcileResponse(result))
}

// @Summary Transaction detail
// @Description Transaction with its orders and audit log
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionDetailResponse
// @Failure 404 {object} map[string]string
// @Router /admin/transactions/{id} [get]
func (h *AdminHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID",
		})
		return
	}

	detail, err := h.admin.GetTransaction(c.Request.Context(), id)
	if err != nil {
		if cr.Is(err, errs.ErrTransactionNotFound) || isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewTransactionDetailResponse(detail))
}

// @Summary Stalled transactions
// @Description Approved transactions that automation gave up on
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Router /admin/transactions/stalled [get]
func (h *AdminHandler) ListStalled(c *gin.Context) {
	txs, err := h.admin.ListStalled(c.Request.Context(), listLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewTransactionResponses(txs))
}

// @Summary Active locks
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.LockResponse
// @Router /admin/locks [get]
func (h *AdminHandler) ListLocks(c *gin.Context) {
	locks, err := h.admin.ListLocks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewLockResponses(locks))
}

// @Summary Dead-lettered jobs
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.QueueFailureResponse
// @Router /admin/queue/failures [get]
func (h *AdminHandler) ListQueueFailures(c *gin.Context) {
	failures, err := h.admin.ListQueueFailures(c.Request.Context(), listLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewQueueFailureResponses(failures))
}

// @Summary Recent webhook deliveries
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.WebhookLogResponse
// @Router /admin/webhooks [get]
func (h *AdminHandler) ListWebhookLogs(c *gin.Context) {
	entries, err := h.admin.ListWebhookLogs(c.Request.Context(), listLimit(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewWebhookLogResponses(entries))
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func listLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 || limit > 500 {
		return defaultListLimit
	}
	return limit
}
