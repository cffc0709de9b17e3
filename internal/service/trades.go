package service

import (
	"context"

	"github.com/guttosm/daytona/internal/domain/models"
	"github.com/guttosm/daytona/internal/storage"
)

// TradeService defines the business operations behind the HTTP handlers:
// listing and shaping trades, creating trades with their fire-and-forget
// user bookkeeping, and reducing price extremes.
type TradeService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTrades(ctx context.Context) ([]models.TradeWithUser, error)
	ListTradesByUser(ctx context.Context, userID string) ([]models.TradeWithUser, error)
	ListTradesBySymbol(ctx context.Context, symbol string, filter storage.TradeFilter) ([]models.TradeWithUser, error)
	CreateTrade(ctx context.Context, user models.User, trade models.Trade) error
	PriceRange(ctx context.Context, symbol string, filter storage.TradeFilter) (*models.PriceRange, error)
	DeleteAllTrades(ctx context.Context) error
}

type tradeService struct {
	repo storage.TradesRepository
}

func NewTradeService(repo storage.TradesRepository) TradeService {
	return &tradeService{repo: repo}
}

func (s *tradeService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *tradeService) ListTrades(ctx context.Context) ([]models.TradeWithUser, error) {
	rows, err := s.repo.ListTrades(ctx)
	if err != nil {
		return nil, err
	}
	return shapeTrades(rows), nil
}

func (s *tradeService) ListTradesByUser(ctx context.Context, userID string) ([]models.TradeWithUser, error) {
	rows, err := s.repo.ListTradesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return shapeTrades(rows), nil
}

func (s *tradeService) ListTradesBySymbol(ctx context.Context, symbol string, filter storage.TradeFilter) ([]models.TradeWithUser, error) {
	rows, err := s.repo.ListTradesBySymbol(ctx, symbol, filter)
	if err != nil {
		return nil, err
	}
	return shapeTrades(rows), nil
}

// CreateTrade records a trade for a user.
//
// The user insert is fire-and-forget: its result is deliberately discarded so
// user bookkeeping never blocks trade creation. An existing user simply fails
// the insert and the trade proceeds against the existing row.
func (s *tradeService) CreateTrade(ctx context.Context, user models.User, trade models.Trade) error {
	_ = s.repo.InsertUser(ctx, user)
	return s.repo.InsertTrade(ctx, trade)
}

// PriceRange returns the highest and lowest trade price for a symbol within
// the optional date window, or nil when no trades match.
func (s *tradeService) PriceRange(ctx context.Context, symbol string, filter storage.TradeFilter) (*models.PriceRange, error) {
	// type never narrows the price query
	filter.Type = ""
	rows, err := s.repo.ListTradesBySymbol(ctx, symbol, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	highest, lowest := findPriceExtremes(rows)
	return &models.PriceRange{
		Symbol:  symbol,
		Highest: highest.Price,
		Lowest:  lowest.Price,
	}, nil
}

func (s *tradeService) DeleteAllTrades(ctx context.Context) error {
	_, err := s.repo.DeleteAllTrades(ctx)
	return err
}

// shapeTrades nests the joined user columns of each flat row into a user
// sub-object, leaving every other trade field unchanged. Order is preserved
// and shaping is applied exactly once per row.
func shapeTrades(rows []models.TradeRow) []models.TradeWithUser {
	shaped := make([]models.TradeWithUser, 0, len(rows))
	for _, row := range rows {
		shaped = append(shaped, models.TradeWithUser{
			ID:        row.ID,
			Type:      row.Type,
			Symbol:    row.Symbol,
			Shares:    row.Shares,
			Price:     row.Price,
			Timestamp: row.Timestamp,
			User: models.TradeUser{
				ID:   row.UserID,
				Name: row.UserName,
			},
		})
	}
	return shaped
}

// findPriceExtremes reduces the rows left to right into the rows holding the
// maximum and minimum price. Comparisons are strict, so on equal prices the
// earliest-encountered row wins.
func findPriceExtremes(rows []models.TradeRow) (highest, lowest models.TradeRow) {
	highest, lowest = rows[0], rows[0]
	for _, row := range rows[1:] {
		if row.Price > highest.Price {
			highest = row
		}
		if row.Price < lowest.Price {
			lowest = row
		}
	}
	return highest, lowest
}
