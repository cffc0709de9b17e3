package models

// TradeRow is a flat row produced by joining trades to users.
//
// The join is a LEFT JOIN, so the user columns are nullable: a trade whose
// userId matches no user row carries nil UserID/UserName.
type TradeRow struct {
	ID        int64
	Type      string
	Symbol    string
	Shares    int64
	Price     float64
	Timestamp string
	UserID    *int64
	UserName  *string
}

// TradeUser is the user sub-object nested into a shaped trade.
// Pointer fields keep the LEFT JOIN null semantics on the wire.
type TradeUser struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// TradeWithUser is a shaped trade: the flat user columns replaced by a
// nested user object, all other trade fields unchanged.
type TradeWithUser struct {
	ID        int64
	Type      string
	Symbol    string
	Shares    int64
	Price     float64
	Timestamp string
	User      TradeUser
}

// PriceRange holds the price extremes for a symbol over a queried window.
type PriceRange struct {
	Symbol  string
	Highest float64
	Lowest  float64
}

// Trade is a trade record as persisted in the trades table. The id is
// caller-supplied, not generated by the store.
type Trade struct {
	ID        int64
	Type      string
	Symbol    string
	Shares    int64
	Price     float64
	Timestamp string
	UserID    int64
}
