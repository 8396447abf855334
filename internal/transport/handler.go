package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	"github.com/goodnatureofminers/trustlynk-backend/internal/journal"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
	"go.uber.org/zap"
)

// DefaultHistoryLimit is used when a history request has no limit.
const DefaultHistoryLimit = 50

// Handler serves the REST gateway.
type Handler struct {
	logger  *zap.Logger
	reader  Reader
	history History
	node    Node
	metrics Metrics
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithNode makes /readyz check the RPC server.
func WithNode(node Node) HandlerOption {
	return func(h *Handler) {
		h.node = node
	}
}

// NewHandler constructs a Handler. history may be nil when no journal is configured.
func NewHandler(logger *zap.Logger, reader Reader, history History, metrics Metrics, opts ...HandlerOption) *Handler {
	h := &Handler{
		logger:  logger.Named("http_gateway"),
		reader:  reader,
		history: history,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), h.observe())

	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)

	v1 := r.Group("/v1")
	{
		v1.GET("/contract", h.contract)

		v1.GET("/policies", h.policies)
		v1.GET("/policies/:id", h.policy)
		v1.GET("/policies/:id/tokens", h.policyTokens)
		v1.GET("/policies/:id/metadata", h.policyMetadata)

		v1.GET("/accounts/:address/policies", h.accountPolicies)
		v1.GET("/accounts/:address/claims", h.accountClaims)
		v1.GET("/accounts/:address/role", h.accountRole)
		v1.GET("/accounts/:address/info", h.accountInfo)
		v1.GET("/accounts/:address/tokens", h.accountTokens)
		v1.GET("/accounts/:address/overview", h.accountOverview)
		v1.GET("/accounts/:address/history", h.accountHistory)

		v1.GET("/claims", h.claims)
		v1.GET("/claims/:id", h.claim)
		v1.GET("/claims/:id/status", h.claimStatus)

		v1.GET("/tokens/:id", h.token)
	}
	return r
}

func (h *Handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		h.metrics.ObserveRequest(route, code, started)
		if code >= http.StatusInternalServerError {
			h.logger.Error("request failed", zap.String("route", route), zap.Int("code", code))
		}
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ready(c *gin.Context) {
	if h.node == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	health, err := h.node.Health(c.Request.Context())
	if err != nil {
		h.logger.Warn("rpc health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rpc server unreachable"})
		return
	}
	if health.Status != NodeHealthy {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}

func (h *Handler) contract(c *gin.Context) {
	ctx := c.Request.Context()
	treasury := h.reader.Treasury(ctx)
	body := gin.H{
		"initialized":  h.reader.IsInitialized(ctx),
		"total_tokens": strconv.FormatUint(h.reader.TotalTokens(ctx), 10),
		"treasury":     treasury,
	}
	if stroops, ok := treasury.Int64(); ok {
		body["treasury_display"] = currency.FormatXLM(stroops)
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) policies(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.AllPolicies(c.Request.Context()))
}

func (h *Handler) policy(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p := h.reader.Policy(c.Request.Context(), id)
	if p == nil {
		notFound(c, "policy")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) policyTokens(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reader.PolicyTokens(c.Request.Context(), id))
}

// policyMetadata renders the NFT document for a policy, optionally personalised by the
// holder query parameter.
func (h *Handler) policyMetadata(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	holder := c.Query("holder")
	if holder != "" {
		if err := soroban.ValidateAddress(holder); err != nil {
			badRequest(c, err)
			return
		}
	}
	p := h.reader.Policy(c.Request.Context(), id)
	if p == nil {
		notFound(c, "policy")
		return
	}
	c.JSON(http.StatusOK, insurance.PolicyMetadata(*p, holder, nil))
}

func (h *Handler) accountPolicies(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reader.UserPolicies(c.Request.Context(), address))
}

func (h *Handler) accountClaims(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reader.UserClaims(c.Request.Context(), address))
}

func (h *Handler) accountRole(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	role := h.reader.UserRole(c.Request.Context(), address)
	c.JSON(http.StatusOK, gin.H{"address": address, "role": role, "label": role.String()})
}

func (h *Handler) accountInfo(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	user := h.reader.UserInfo(c.Request.Context(), address)
	if user == nil {
		notFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) accountTokens(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reader.UserTokens(c.Request.Context(), address))
}

func (h *Handler) accountOverview(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reader.Overview(c.Request.Context(), address))
}

func (h *Handler) accountHistory(c *gin.Context) {
	address, ok := addressParam(c)
	if !ok {
		return
	}
	if h.history == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "invocation journal is not configured"})
		return
	}
	limit := DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := safe.ParsePositiveUint64(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if n > journal.MaxRecentLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must not exceed %d", journal.MaxRecentLimit)})
			return
		}
		limit = int(n)
	}
	entries, err := h.history.RecentInvocations(c.Request.Context(), address, limit)
	if err != nil {
		h.logger.Error("history query failed", zap.String("address", address), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "history unavailable"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) claims(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.AllClaims(c.Request.Context()))
}

func (h *Handler) claim(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	claim := h.reader.ClaimDetails(c.Request.Context(), id)
	if claim == nil {
		notFound(c, "claim")
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *Handler) claimStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	snap := h.reader.ClaimStatus(c.Request.Context(), id)
	if snap == nil {
		notFound(c, "claim")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": snap.Status,
		"label":  snap.Status.String(),
		"amount": snap.Amount,
		"score":  snap.Score,
	})
}

func (h *Handler) token(c *gin.Context) {
	meta := h.reader.NFTMetadata(c.Request.Context(), c.Param("id"))
	if meta == nil {
		notFound(c, "token")
		return
	}
	c.JSON(http.StatusOK, meta)
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := safe.ParsePositiveUint64(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return 0, false
	}
	return id, true
}

func addressParam(c *gin.Context) (string, bool) {
	address := c.Param("address")
	if err := soroban.ValidateAddress(address); err != nil {
		badRequest(c, err)
		return "", false
	}
	return address, true
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, what string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}
