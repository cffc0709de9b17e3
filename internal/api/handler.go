package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/daytona/internal/domain/dto"
	"github.com/guttosm/daytona/internal/domain/models"
	"github.com/guttosm/daytona/internal/service"
	"github.com/guttosm/daytona/internal/storage"
)

// Handler provides the HTTP handlers for the trade endpoints.
//
// Responsibilities:
//   - Read path/query parameters and request bodies
//   - Delegate to the service layer
//   - Translate service results into response DTOs and status codes
//
// Status-code contract: read and delete endpoints answer store errors with
// the error body at status 200; only trade creation uses 400/500 for store
// failures. That asymmetry is part of the published API and must not be
// unified here.
type Handler struct {
	svc service.TradeService
}

// NewHandler constructs a Handler around the given service.
func NewHandler(svc service.TradeService) *Handler {
	return &Handler{svc: svc}
}

// GetUsers godoc
// @Summary      List users
// @Description  Returns every user in the store's natural row order
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to list users", err))
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetTrades godoc
// @Summary      List trades
// @Description  Returns every trade in ascending id order with its user nested
// @Tags         trades
// @Produce      json
// @Success      200  {array}   dto.TradeResponse
// @Failure      404  {object}  dto.MessageResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /trades [get]
func (h *Handler) GetTrades(c *gin.Context) {
	trades, err := h.svc.ListTrades(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to list trades", err))
		return
	}
	if len(trades) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Trades not found."})
		return
	}
	c.JSON(http.StatusOK, dto.NewTradeResponses(trades))
}

// CreateTrade godoc
// @Summary      Create trade
// @Description  Records a trade; the embedded user is upserted fire-and-forget
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      dto.CreateTradeRequest  true  "Trade with embedded user"
// @Success      200    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.MessageResponse  "Duplicate trade id"
// @Failure      500    {object}  dto.ErrorResponse    "Internal Error"
// @Router       /trades [post]
func (h *Handler) CreateTrade(c *gin.Context) {
	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// malformed bodies follow the generic internal-error path
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal Server Error.", err))
		return
	}

	user := models.User{UserID: req.User.ID, Name: req.User.Name}
	trade := models.Trade{
		ID:        req.ID,
		Type:      req.Type,
		Symbol:    req.Symbol,
		Shares:    req.Shares,
		Price:     req.Price,
		Timestamp: req.Timestamp,
		UserID:    req.User.ID,
	}

	err := h.svc.CreateTrade(c.Request.Context(), user, trade)
	if errors.Is(err, storage.ErrDuplicateTrade) {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Code: http.StatusBadRequest, Message: "Trade id already found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create trade", err))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "trade created successfully."})
}

// GetTradesByUser godoc
// @Summary      List trades by user
// @Description  Returns the trades of one user in ascending id order
// @Tags         trades
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   dto.TradeResponse
// @Failure      404     {object}  dto.MessageResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /trades/{userId} [get]
func (h *Handler) GetTradesByUser(c *gin.Context) {
	userID := c.Param("userId")

	trades, err := h.svc.ListTradesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to list trades", err))
		return
	}
	if len(trades) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "UserId not found."})
		return
	}
	c.JSON(http.StatusOK, dto.NewTradeResponses(trades))
}

// GetTradesBySymbol godoc
// @Summary      List trades by symbol
// @Description  Returns the trades for a symbol, optionally narrowed by type and date range
// @Tags         stocks
// @Produce      json
// @Param        stockSymbol  path      string  true   "Stock ticker"       example(AAPL)
// @Param        type         query     string  false  "Trade type filter"  example(buy)
// @Param        start        query     string  false  "Start date (YYYY-MM-DD); only applied together with end"
// @Param        end          query     string  false  "End date (YYYY-MM-DD); only applied together with start"
// @Success      200          {array}   dto.TradeResponse
// @Failure      404          {object}  dto.MessageResponse  "Not Found"
// @Failure      500          {object}  dto.ErrorResponse    "Internal Error"
// @Router       /stocks/{stockSymbol}/trades [get]
func (h *Handler) GetTradesBySymbol(c *gin.Context) {
	symbol := c.Param("stockSymbol")
	filter := storage.TradeFilter{
		Type:  c.Query("type"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	trades, err := h.svc.ListTradesBySymbol(c.Request.Context(), symbol, filter)
	if err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to list trades", err))
		return
	}
	if len(trades) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Trades not found."})
		return
	}
	c.JSON(http.StatusOK, dto.NewTradeResponses(trades))
}

// GetPriceRange godoc
// @Summary      Price extremes for a symbol
// @Description  Returns the highest and lowest trade price for a symbol within an optional date range
// @Tags         stocks
// @Produce      json
// @Param        stockSymbol  path      string  true   "Stock ticker"  example(AAPL)
// @Param        start        query     string  false  "Start date (YYYY-MM-DD); only applied together with end"
// @Param        end          query     string  false  "End date (YYYY-MM-DD); only applied together with start"
// @Success      200          {object}  dto.PriceResponse
// @Failure      404          {object}  dto.MessageResponse  "Not Found"
// @Failure      500          {object}  dto.ErrorResponse    "Internal Error"
// @Router       /stocks/{stockSymbol}/price [get]
func (h *Handler) GetPriceRange(c *gin.Context) {
	symbol := c.Param("stockSymbol")
	filter := storage.TradeFilter{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	pr, err := h.svc.PriceRange(c.Request.Context(), symbol, filter)
	if err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to compute price range", err))
		return
	}
	if pr == nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "There are no trades in the given date range."})
		return
	}

	c.JSON(http.StatusOK, dto.PriceResponse{
		Symbol:  pr.Symbol,
		Highest: pr.Highest,
		Lowest:  pr.Lowest,
	})
}

// DeleteTrades godoc
// @Summary      Delete all trades
// @Description  Unconditionally removes every trade row; users are untouched
// @Tags         trades
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /trades [delete]
func (h *Handler) DeleteTrades(c *gin.Context) {
	if err := h.svc.DeleteAllTrades(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, dto.NewErrorResponse("failed to delete trades", err))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Delete all the trades successfully."})
}
