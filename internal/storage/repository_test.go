package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/daytona/internal/domain/models"
	_ "modernc.org/sqlite"
)

// newTestRepo opens a fresh in-memory store with the schema applied.
func newTestRepo(t *testing.T) TradesRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one connection, or each pooled conn would see its own empty database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewTradesRepository(db)
	if err := repo.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return repo
}

func seedUser(t *testing.T, repo TradesRepository, id int64, name string) {
	t.Helper()
	if err := repo.InsertUser(context.Background(), models.User{UserID: id, Name: name}); err != nil {
		t.Fatalf("insert user %d: %v", id, err)
	}
}

func seedTrade(t *testing.T, repo TradesRepository, trade models.Trade) {
	t.Helper()
	if err := repo.InsertTrade(context.Background(), trade); err != nil {
		t.Fatalf("insert trade %d: %v", trade.ID, err)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	// second run must be a no-op, not an error
	if err := repo.InitSchema(context.Background()); err != nil {
		t.Fatalf("second InitSchema: %v", err)
	}
}

func TestListTrades_OrderAndJoin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, 1, "David")
	seedUser(t, repo, 2, "Sonia")
	seedTrade(t, repo, models.Trade{ID: 3, Type: "sell", Symbol: "AAPL", Shares: 10, Price: 152.39, Timestamp: "2014-06-16 09:00:00", UserID: 2})
	seedTrade(t, repo, models.Trade{ID: 1, Type: "buy", Symbol: "AAPL", Shares: 25, Price: 160.11, Timestamp: "2014-06-14 10:30:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 2, Type: "buy", Symbol: "MSFT", Shares: 5, Price: 42.50, Timestamp: "2014-06-15 11:00:00", UserID: 1})

	rows, err := repo.ListTrades(ctx)
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []int64{1, 2, 3} {
		if rows[i].ID != want {
			t.Fatalf("row %d: id=%d, want %d (ascending order)", i, rows[i].ID, want)
		}
	}
	if rows[0].UserID == nil || *rows[0].UserID != 1 || rows[0].UserName == nil || *rows[0].UserName != "David" {
		t.Fatalf("row 0 user not joined: %+v", rows[0])
	}
	if rows[2].UserName == nil || *rows[2].UserName != "Sonia" {
		t.Fatalf("row 2 user not joined: %+v", rows[2])
	}
}

func TestInsertTrade_DuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, 1, "David")
	seedTrade(t, repo, models.Trade{ID: 1, Type: "buy", Symbol: "AAPL", Shares: 25, Price: 152.39, Timestamp: "2014-06-14 10:30:00", UserID: 1})

	err := repo.InsertTrade(ctx, models.Trade{ID: 1, Type: "sell", Symbol: "MSFT", Shares: 1, Price: 1, Timestamp: "2014-06-15 10:30:00", UserID: 1})
	if !errors.Is(err, ErrDuplicateTrade) {
		t.Fatalf("expected ErrDuplicateTrade, got %v", err)
	}

	// original row must be unchanged
	rows, err := repo.ListTrades(ctx)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListTrades after duplicate: rows=%d err=%v", len(rows), err)
	}
	if rows[0].Symbol != "AAPL" || rows[0].Type != "buy" {
		t.Fatalf("original trade modified: %+v", rows[0])
	}
}

func TestInsertUser_DuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, 1, "David")
	if err := repo.InsertUser(context.Background(), models.User{UserID: 1, Name: "Other"}); err == nil {
		t.Fatalf("expected error inserting duplicate user id")
	}
}

func TestListTradesByUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, 1, "David")
	seedUser(t, repo, 2, "Sonia")
	seedTrade(t, repo, models.Trade{ID: 1, Type: "buy", Symbol: "AAPL", Shares: 25, Price: 152.39, Timestamp: "2014-06-14 10:30:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 2, Type: "sell", Symbol: "AAPL", Shares: 5, Price: 153.00, Timestamp: "2014-06-15 10:30:00", UserID: 2})

	// path parameter arrives as text and is coerced by the store
	rows, err := repo.ListTradesByUser(ctx, "1")
	if err != nil {
		t.Fatalf("ListTradesByUser: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	empty, err := repo.ListTradesByUser(ctx, "99")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no rows for unknown user, got %d err=%v", len(empty), err)
	}
}

func TestListTradesBySymbol_Filters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, 1, "David")
	seedTrade(t, repo, models.Trade{ID: 1, Type: "buy", Symbol: "AAPL", Shares: 25, Price: 10, Timestamp: "2014-06-14 10:30:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 2, Type: "sell", Symbol: "AAPL", Shares: 5, Price: 50, Timestamp: "2014-06-20 15:00:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 3, Type: "buy", Symbol: "AAPL", Shares: 5, Price: 30, Timestamp: "2014-06-30 09:00:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 4, Type: "buy", Symbol: "MSFT", Shares: 5, Price: 42, Timestamp: "2014-06-14 10:30:00", UserID: 1})

	cases := []struct {
		name    string
		symbol  string
		filter  TradeFilter
		wantIDs []int64
	}{
		{name: "symbol only", symbol: "AAPL", filter: TradeFilter{}, wantIDs: []int64{1, 2, 3}},
		{name: "type filter", symbol: "AAPL", filter: TradeFilter{Type: "buy"}, wantIDs: []int64{1, 3}},
		{name: "date range inclusive", symbol: "AAPL", filter: TradeFilter{Start: "2014-06-14", End: "2014-06-20"}, wantIDs: []int64{1, 2}},
		{name: "start without end applies no date filter", symbol: "AAPL", filter: TradeFilter{Start: "2014-06-20"}, wantIDs: []int64{1, 2, 3}},
		{name: "end without start applies no date filter", symbol: "AAPL", filter: TradeFilter{End: "2014-06-14"}, wantIDs: []int64{1, 2, 3}},
		{name: "type and range", symbol: "AAPL", filter: TradeFilter{Type: "buy", Start: "2014-06-15", End: "2014-06-30"}, wantIDs: []int64{3}},
		{name: "unknown symbol", symbol: "GOOG", filter: TradeFilter{}, wantIDs: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.ListTradesBySymbol(ctx, tc.symbol, tc.filter)
			if err != nil {
				t.Fatalf("ListTradesBySymbol: %v", err)
			}
			if len(rows) != len(tc.wantIDs) {
				t.Fatalf("got %d rows, want %d (%+v)", len(rows), len(tc.wantIDs), rows)
			}
			for i, id := range tc.wantIDs {
				if rows[i].ID != id {
					t.Fatalf("row %d: id=%d, want %d", i, rows[i].ID, id)
				}
			}
		})
	}
}

func TestDeleteAllTrades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedUser(t, repo, 1, "David")
	seedTrade(t, repo, models.Trade{ID: 1, Type: "buy", Symbol: "AAPL", Shares: 25, Price: 152.39, Timestamp: "2014-06-14 10:30:00", UserID: 1})
	seedTrade(t, repo, models.Trade{ID: 2, Type: "sell", Symbol: "AAPL", Shares: 5, Price: 153.00, Timestamp: "2014-06-15 10:30:00", UserID: 1})

	n, err := repo.DeleteAllTrades(ctx)
	if err != nil || n != 2 {
		t.Fatalf("DeleteAllTrades: n=%d err=%v", n, err)
	}

	// deleting from an already-empty table still succeeds
	n, err = repo.DeleteAllTrades(ctx)
	if err != nil || n != 0 {
		t.Fatalf("second DeleteAllTrades: n=%d err=%v", n, err)
	}

	rows, err := repo.ListTrades(ctx)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty store, got %d rows err=%v", len(rows), err)
	}

	// users survive a trade wipe
	users, err := repo.ListUsers(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("expected 1 user after wipe, got %d err=%v", len(users), err)
	}
}

func TestListTrades_QueryError_SQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewTradesRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT trades.id")).WillReturnError(errors.New("store down"))
	if _, err := repo.ListTrades(context.Background()); err == nil {
		t.Fatalf("expected query error to propagate")
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trades")).WillReturnError(errors.New("store down"))
	if _, err := repo.DeleteAllTrades(context.Background()); err == nil {
		t.Fatalf("expected exec error to propagate")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIsConstraintViolation_NonSQLiteError(t *testing.T) {
	if isConstraintViolation(errors.New("plain")) {
		t.Fatalf("plain error misclassified as constraint violation")
	}
}
