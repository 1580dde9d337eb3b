// Package order implements the Order repository using PostgreSQL.
// Classified items are stored as a JSONB document; grouping and counts are
// derived in the domain layer, never persisted redundantly.
package order

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirana-labs/kirana-backend/internal/adapter/postgres"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// dbItem is the JSONB representation of one classified item.
type dbItem struct {
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	CategoryName   string `json:"category_name"`
	CategoryNumber int    `json:"category_number"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createOrderSQL = `
INSERT INTO orders (id, customer_phone, customer_name, utterance, items, audio_ref, status, notified_recipients, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

// Create inserts a new order.
func (r *Repo) Create(ctx context.Context, o *domain.Order) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	items, err := marshalItems(o.Items)
	if err != nil {
		return fmt.Errorf("order %s: marshal items: %w", o.ID, err)
	}

	recipients := o.NotifiedRecipients
	if recipients == nil {
		recipients = []string{}
	}

	_, err = q.Exec(ctx, createOrderSQL,
		o.ID, o.CustomerPhone, o.CustomerName, o.Text, items, o.AudioRef,
		o.Status.String(), recipients, o.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "order", o.ID.String())
	}
	return nil
}

const setNotifiedSQL = `
UPDATE orders SET notified_recipients = $2, updated_at = now()
WHERE id = $1`

// SetNotifiedRecipients records the recipient set a dispatch attempt covered.
// The list reflects "attempted", not confirmed delivery.
func (r *Repo) SetNotifiedRecipients(ctx context.Context, id uuid.UUID, recipients []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setNotifiedSQL, id, recipients)
	if err != nil {
		return postgres.MapError(err, "order", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const updateStatusSQL = `
UPDATE orders SET status = $2, updated_at = now()
WHERE id = $1`

// UpdateStatus moves an order to a new lifecycle status (admin action).
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStatusSQL, id, status.String())
	if err != nil {
		return postgres.MapError(err, "order", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const deleteOrderSQL = `DELETE FROM orders WHERE id = $1`

// Delete removes an order (admin action). Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return postgres.MapError(err, "order", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const orderColumns = "id, customer_phone, customer_name, utterance, items, audio_ref, status, notified_recipients, created_at, updated_at"

// GetByID returns an order by primary key. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, postgres.MapError(err, "order", id.String())
	}
	return o, nil
}

// List returns orders matching the filter, newest first, plus the total count
// for the filter (ignoring pagination).
func (r *Repo) List(ctx context.Context, f Filter) ([]*domain.Order, int, error) {
	f.normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := sq.Select().From("orders").PlaceholderFormat(sq.Dollar)
	base = f.apply(base)

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	listSQL, listArgs, err := f.apply(sq.Select(orderColumns).From("orders").PlaceholderFormat(sq.Dollar)).
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalItems(items []domain.ClassifiedItem) ([]byte, error) {
	rows := make([]dbItem, len(items))
	for i, item := range items {
		rows[i] = dbItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			CategoryName:   item.CategoryName,
			CategoryNumber: item.CategoryNumber,
		}
	}
	return json.Marshal(rows)
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		items  []byte
		status string
	)
	if err := row.Scan(&o.ID, &o.CustomerPhone, &o.CustomerName, &o.Text, &items,
		&o.AudioRef, &status, &o.NotifiedRecipients, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)

	var rows []dbItem
	if err := json.Unmarshal(items, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	o.Items = make([]domain.ClassifiedItem, len(rows))
	for i, r := range rows {
		o.Items[i] = domain.ClassifiedItem{
			Name:           r.Name,
			Quantity:       r.Quantity,
			CategoryName:   r.CategoryName,
			CategoryNumber: r.CategoryNumber,
		}
	}
	return &o, nil
}
