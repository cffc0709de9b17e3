package dto

import "github.com/guttosm/daytona/internal/domain/models"

// TradeUserPayload is the embedded user object on a create-trade request.
type TradeUserPayload struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"David"`
}

// CreateTradeRequest is the JSON body accepted by POST /trades.
//
// The trade id is caller-supplied and must be unique. Shares defaults to 0
// when omitted. The embedded user is upserted fire-and-forget before the
// trade row is inserted.
type CreateTradeRequest struct {
	ID        int64            `json:"id" example:"100"`
	Type      string           `json:"type" example:"buy"`
	Symbol    string           `json:"symbol" example:"AAPL"`
	Shares    int64            `json:"shares" example:"25"`
	Price     float64          `json:"price" example:"152.39"`
	Timestamp string           `json:"timestamp" example:"2014-06-14 10:30:00"`
	User      TradeUserPayload `json:"user"`
}

// TradeResponse is a shaped trade as returned by the list endpoints: flat
// trade fields plus a nested user object.
type TradeResponse struct {
	ID        int64            `json:"id" example:"100"`
	Type      string           `json:"type" example:"buy"`
	Symbol    string           `json:"symbol" example:"AAPL"`
	Shares    int64            `json:"shares" example:"25"`
	Price     float64          `json:"price" example:"152.39"`
	Timestamp string           `json:"timestamp" example:"2014-06-14 10:30:00"`
	User      models.TradeUser `json:"user"`
}

// PriceResponse is the body returned by GET /stocks/:stockSymbol/price.
type PriceResponse struct {
	Symbol  string  `json:"symbol" example:"AAPL"`
	Highest float64 `json:"highest" example:"163.42"`
	Lowest  float64 `json:"lowest" example:"152.39"`
}

// MessageResponse is a plain confirmation or rejection message.
type MessageResponse struct {
	Code    int    `json:"code,omitempty" example:"400"`
	Message string `json:"message" example:"Trade id already found."`
}

// NewTradeResponse maps a shaped domain trade onto the API contract.
func NewTradeResponse(t models.TradeWithUser) TradeResponse {
	return TradeResponse{
		ID:        t.ID,
		Type:      t.Type,
		Symbol:    t.Symbol,
		Shares:    t.Shares,
		Price:     t.Price,
		Timestamp: t.Timestamp,
		User:      t.User,
	}
}

// NewTradeResponses maps a slice of shaped trades, preserving order.
func NewTradeResponses(trades []models.TradeWithUser) []TradeResponse {
	out := make([]TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, NewTradeResponse(t))
	}
	return out
}
