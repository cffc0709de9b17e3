package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guttosm/daytona/internal/domain/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateTrade reports an insert whose trade id already exists.
var ErrDuplicateTrade = errors.New("trade id already exists")

// TradesRepository defines the contract for store operations.
type TradesRepository interface {
	InitSchema(ctx context.Context) error
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTrades(ctx context.Context) ([]models.TradeRow, error)
	ListTradesByUser(ctx context.Context, userID string) ([]models.TradeRow, error)
	ListTradesBySymbol(ctx context.Context, symbol string, filter TradeFilter) ([]models.TradeRow, error)
	InsertUser(ctx context.Context, user models.User) error
	InsertTrade(ctx context.Context, trade models.Trade) error
	DeleteAllTrades(ctx context.Context) (int64, error)
}

// TradeFilter carries the optional predicates of the symbol endpoints.
// A date filter applies only when Start and End are both present.
type TradeFilter struct {
	Type  string
	Start string
	End   string
}

type tradesRepository struct {
	db *sql.DB
}

func NewTradesRepository(db *sql.DB) TradesRepository {
	return &tradesRepository{db: db}
}

// joinedSelect is the shared SELECT for every trade listing: trades joined to
// their owning user. The LEFT JOIN leaves the user columns NULL when the
// userId matches no user row.
const joinedSelect = `
	SELECT trades.id, trades.type, trades.symbol, trades.shares, trades.price, trades.timestamp,
	       users.userId, users.name
	FROM trades
	LEFT JOIN users ON users.userId = trades.userId`

// InitSchema idempotently creates the users and trades tables.
func (r *tradesRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			userId INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT
		)`); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trades (
			id INTEGER PRIMARY KEY,
			type TEXT,
			symbol TEXT,
			shares INTEGER DEFAULT 0,
			price REAL,
			timestamp TEXT,
			userId INTEGER,
			CONSTRAINT users_fk_userId FOREIGN KEY (userId)
				REFERENCES users(userId) ON UPDATE CASCADE ON DELETE CASCADE
		)`)
	return err
}

// ListUsers returns every user row in the store's natural order.
func (r *tradesRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT userId, name FROM users`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListTrades returns every trade joined to its user, ordered by trade id.
func (r *tradesRepository) ListTrades(ctx context.Context) ([]models.TradeRow, error) {
	return r.queryTradeRows(ctx, joinedSelect+` ORDER BY trades.id`)
}

// ListTradesByUser returns the trades of a single user, ordered by trade id.
// The userID arrives as raw path text; SQLite's type affinity coerces it
// against the INTEGER column.
func (r *tradesRepository) ListTradesByUser(ctx context.Context, userID string) ([]models.TradeRow, error) {
	return r.queryTradeRows(ctx, joinedSelect+` WHERE trades.userId = ? ORDER BY trades.id`, userID)
}

// ListTradesBySymbol returns the trades for a symbol, narrowed by the
// optional filter predicates, ordered by trade id.
//
// Predicates are assembled as fragments so absent inputs contribute neither
// SQL nor arguments. A lone Start or End disables date filtering entirely.
func (r *tradesRepository) ListTradesBySymbol(ctx context.Context, symbol string, filter TradeFilter) ([]models.TradeRow, error) {
	conditions := `trades.symbol = ?`
	args := []any{symbol}

	if filter.Type != "" {
		conditions += ` AND trades.type = ?`
		args = append(args, filter.Type)
	}
	if filter.Start != "" && filter.End != "" {
		// Truncate the stored timestamp to its calendar date; bounds are inclusive.
		conditions += ` AND date(datetime(trades.timestamp)) BETWEEN ? AND ?`
		args = append(args, filter.Start, filter.End)
	}

	return r.queryTradeRows(ctx, joinedSelect+` WHERE `+conditions+` ORDER BY trades.id`, args...)
}

// InsertUser inserts a user row with a caller-chosen id.
// A duplicate id fails at the store; callers decide whether that matters.
func (r *tradesRepository) InsertUser(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (userId, name) VALUES (?, ?)`,
		user.UserID, user.Name,
	)
	return err
}

// InsertTrade inserts a trade row. A primary-key violation on the trade id
// is mapped to ErrDuplicateTrade; any other store error passes through.
func (r *tradesRepository) InsertTrade(ctx context.Context, trade models.Trade) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trades (id, type, symbol, shares, price, timestamp, userId) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.Type, trade.Symbol, trade.Shares, trade.Price, trade.Timestamp, trade.UserID,
	)
	if err != nil && isConstraintViolation(err) {
		return ErrDuplicateTrade
	}
	return err
}

// DeleteAllTrades removes every trade row and reports how many were deleted.
func (r *tradesRepository) DeleteAllTrades(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trades`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// queryTradeRows runs a joined trade query and scans the flat rows,
// preserving result order.
func (r *tradesRepository) queryTradeRows(ctx context.Context, query string, args ...any) ([]models.TradeRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TradeRow
	for rows.Next() {
		var tr models.TradeRow
		var userID sql.NullInt64
		var userName sql.NullString
		if err := rows.Scan(&tr.ID, &tr.Type, &tr.Symbol, &tr.Shares, &tr.Price, &tr.Timestamp, &userID, &userName); err != nil {
			return nil, err
		}
		if userID.Valid {
			tr.UserID = &userID.Int64
		}
		if userName.Valid {
			tr.UserName = &userName.String
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

// isConstraintViolation reports whether err is any SQLite constraint failure
// (primary key, foreign key, unique).
func isConstraintViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
