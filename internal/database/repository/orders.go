package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/threecourse/internal/database"
)

// OrderRepo handles the order journal.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// Insert stores o and its lines in one transaction.
func (r *OrderRepo) Insert(ctx context.Context, o Order) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO orders(id, total, item_count, created_at)
		VALUES (?, ?, ?, ?);
		`, o.ID, encodePrice(o.Total), len(o.Lines), o.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert order %s: %w", o.ID, err)
		}
		for _, l := range o.Lines {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items(id, order_id, position, menu_item_id, name, description, price)
			VALUES (?, ?, ?, ?, ?, ?, ?);
			`, l.ID, o.ID, l.Position, l.MenuItemID, l.Name, l.Description, encodePrice(l.Price))
			if err != nil {
				return fmt.Errorf("insert order item %s: %w", l.ID, err)
			}
		}
		return nil
	})
}

// List returns orders newest first with their lines. limit <= 0 means all.
func (r *OrderRepo) List(ctx context.Context, limit int) ([]Order, error) {
	q := `SELECT id, total, created_at FROM orders ORDER BY created_at DESC, id`
	var args []interface{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	var out []Order
	for rows.Next() {
		var o Order
		var total string
		if err := rows.Scan(&o.ID, &total, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		if o.Total, err = decodePrice(total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("order %s total: %w", o.ID, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// single connection: rows must be closed before the next query
	rows.Close()

	for i := range out {
		lines, err := r.lines(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Lines = lines
	}
	return out, nil
}

// Count returns the number of journaled orders.
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (r *OrderRepo) lines(ctx context.Context, orderID string) ([]OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, order_id, position, menu_item_id, name, description, price
	FROM order_items WHERE order_id = ? ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OrderLine
	for rows.Next() {
		var l OrderLine
		var price string
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Position, &l.MenuItemID, &l.Name, &l.Description, &price); err != nil {
			return nil, err
		}
		if l.Price, err = decodePrice(price); err != nil {
			return nil, fmt.Errorf("order item %s price: %w", l.ID, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Prices are stored as text: sqlite turns a bound NaN into NULL.
func encodePrice(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func decodePrice(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
