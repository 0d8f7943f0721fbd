package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
)

const schema = `
CREATE TABLE IF NOT EXISTS portfolio (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	coin_id TEXT NOT NULL,
	name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	quantity REAL NOT NULL DEFAULT 0,
	current_price REAL NOT NULL DEFAULT 0,
	last_updated DATETIME NOT NULL
)`

// SQLiteRepository persists holdings in a single SQLite table. It owns one
// *sql.DB pool for its lifetime; multi-step mutations run inside explicit
// transactions so concurrent refreshes cannot interleave partial updates.
type SQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.PortfolioRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (or creates) the database file and applies the
// schema idempotently.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio database %s: %w", path, err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY races between the pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create portfolio schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Insert persists a new holding and assigns its generated id.
func (r *SQLiteRepository) Insert(ctx context.Context, h *entities.Holding) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolio (coin_id, name, symbol, quantity, current_price, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		h.CoinID, h.Name, h.Symbol, h.Quantity, h.CurrentPrice, h.LastUpdated.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert holding for %s: %w", h.CoinID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted holding id: %w", err)
	}
	h.ID = id
	return nil
}

// Delete removes a holding by id. An id that does not exist is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM portfolio WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete holding %d: %w", id, err)
	}
	return nil
}

// List returns every holding in storage order.
func (r *SQLiteRepository) List(ctx context.Context) ([]entities.Holding, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, coin_id, name, symbol, quantity, current_price, last_updated FROM portfolio`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []entities.Holding
	for rows.Next() {
		var h entities.Holding
		if err := rows.Scan(&h.ID, &h.CoinID, &h.Name, &h.Symbol, &h.Quantity, &h.CurrentPrice, &h.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// DistinctCoinIDs returns the deduplicated set of held coin ids.
func (r *SQLiteRepository) DistinctCoinIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT coin_id FROM portfolio`)
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct coin ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan coin id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdatePrices applies one refresh result inside a single transaction.
// Every row whose coin id has a price in the map gets the new price and the
// shared timestamp; rows with absent ids keep their cached values.
func (r *SQLiteRepository) UpdatePrices(ctx context.Context, prices map[string]float64, at time.Time) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin refresh transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE portfolio SET current_price = ?, last_updated = ? WHERE coin_id = ?`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare refresh statement: %w", err)
	}
	defer stmt.Close()

	at = at.UTC()
	for coinID, price := range prices {
		if _, err := stmt.ExecContext(ctx, price, at, coinID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update price for %s: %w", coinID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit refresh transaction: %w", err)
	}
	return nil
}

// Totals returns the aggregate portfolio value and row count, zeroes when
// the table is empty.
func (r *SQLiteRepository) Totals(ctx context.Context) (entities.PortfolioTotals, error) {
	var totals entities.PortfolioTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity * current_price), 0), COUNT(*) FROM portfolio`,
	).Scan(&totals.TotalValue, &totals.Holdings)
	if err != nil {
		return entities.PortfolioTotals{}, fmt.Errorf("failed to compute portfolio totals: %w", err)
	}
	return totals, nil
}

// Close closes the underlying database pool.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
