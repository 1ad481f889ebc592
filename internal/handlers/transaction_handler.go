package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/raihankalla/myriad-backend/internal/services/notification"
	"github.com/raihankalla/myriad-backend/pkg/logger"
)

// TransactionHandler handles HTTP requests related to tipping transactions
type TransactionHandler struct {
	transactionRepository repositories.TransactionRepository
	notifications         *notification.Service
	officialAddress       string
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txRepo repositories.TransactionRepository, notifications *notification.Service, officialAddress string) *TransactionHandler {
	return &TransactionHandler{
		transactionRepository: txRepo,
		notifications:         notifications,
		officialAddress:       officialAddress,
	}
}

// RegisterTransactionRoutes registers transaction-related routes
func (h *TransactionHandler) RegisterTransactionRoutes(g *echo.Group) {
	g.POST("/transactions", h.CreateTip)
	g.POST("/transactions/claim", h.ClaimTips)
	g.POST("/transactions/reward", h.SendReward)
	g.POST("/transactions/initial", h.SendInitialGrant)
	g.GET("/transactions", h.GetTransactions)
}

// CreateTip records a completed tip from the authenticated user and notifies
// the recipient. Notification failures do not fail the request.
func (h *TransactionHandler) CreateTip(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tx, err := h.createTransaction(c, userID)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.notifications.SendTipsSuccess(ctx, tx); err != nil {
		logger.For(ctx).WithError(err).Warn("tip notification failed")
	}

	return c.JSON(http.StatusCreated, tx)
}

// ClaimTips records a payout of escrowed tips to the authenticated user
func (h *TransactionHandler) ClaimTips(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tx := &models.Transaction{
		Hash:       req.Hash,
		From:       h.officialAddress,
		To:         userID,
		Amount:     req.Amount,
		CurrencyID: req.CurrencyID,
	}

	ctx := c.Request().Context()
	if err := h.transactionRepository.CreateTransaction(ctx, tx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.notifications.SendClaimTips(ctx, tx); err != nil {
		logger.For(ctx).WithError(err).Warn("claim notification failed")
	}

	return c.JSON(http.StatusCreated, tx)
}

// SendReward records a platform reward to a user
func (h *TransactionHandler) SendReward(c echo.Context) error {
	tx, err := h.createPlatformTransaction(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.notifications.SendRewardSuccess(ctx, tx); err != nil {
		logger.For(ctx).WithError(err).Warn("reward notification failed")
	}

	return c.JSON(http.StatusCreated, tx)
}

// SendInitialGrant records the token grant a user receives on signup
func (h *TransactionHandler) SendInitialGrant(c echo.Context) error {
	tx, err := h.createPlatformTransaction(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.notifications.SendInitialTips(ctx, tx); err != nil {
		logger.For(ctx).WithError(err).Warn("initial grant notification failed")
	}

	return c.JSON(http.StatusCreated, tx)
}

// GetTransactions retrieves the authenticated user's transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	skip, limit := pagination(c)
	txs, err := h.transactionRepository.GetTransactionsByUser(c.Request().Context(), userID, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) createTransaction(c echo.Context, from string) (*models.Transaction, error) {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	if req.Type != "" && req.Type != models.RefUser && req.ReferenceID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "reference_id is required for content tips")
	}

	tx := &models.Transaction{
		Hash:        req.Hash,
		From:        from,
		To:          req.To,
		Amount:      req.Amount,
		CurrencyID:  req.CurrencyID,
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
	}

	if err := h.transactionRepository.CreateTransaction(c.Request().Context(), tx); err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return tx, nil
}

func (h *TransactionHandler) createPlatformTransaction(c echo.Context) (*models.Transaction, error) {
	return h.createTransaction(c, h.officialAddress)
}
