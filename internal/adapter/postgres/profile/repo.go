// Package profile implements the Profile repository using PostgreSQL.
// Customers and shopkeepers live in separate tables, mirroring the
// one-profile-per-identity-per-role invariant with a primary key on phone.
package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirana-labs/kirana-backend/internal/adapter/postgres"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Repo provides customer and shopkeeper persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

const getCustomerSQL = `
SELECT phone, name, latitude, longitude, status, total_orders, created_at, updated_at
FROM customers WHERE phone = $1`

// GetCustomer returns the customer profile for a phone number.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetCustomer(ctx context.Context, phone string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getCustomerSQL, phone)
	p, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", phone)
	}
	return p, nil
}

const upsertCustomerSQL = `
INSERT INTO customers (phone, name, latitude, longitude, status, total_orders, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (phone) DO UPDATE SET
    name       = EXCLUDED.name,
    latitude   = EXCLUDED.latitude,
    longitude  = EXCLUDED.longitude,
    status     = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at`

// UpsertCustomer inserts or overwrites a customer profile. On re-onboarding
// the creation timestamp and running order count are preserved.
func (r *Repo) UpsertCustomer(ctx context.Context, p *domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lat, lon := locationCols(p.Location)
	_, err := q.Exec(ctx, upsertCustomerSQL,
		p.Phone, p.Name, lat, lon, p.Status.String(), p.TotalOrders, p.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "customer", p.Phone)
	}
	return nil
}

const incrementOrdersSQL = `
UPDATE customers SET total_orders = total_orders + 1, updated_at = now()
WHERE phone = $1`

// IncrementOrderCount bumps the customer's running order count.
func (r *Repo) IncrementOrderCount(ctx context.Context, phone string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, incrementOrdersSQL, phone)
	if err != nil {
		return postgres.MapError(err, "customer", phone)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", phone, domain.ErrNotFound)
	}
	return nil
}

const listCustomersSQL = `
SELECT phone, name, latitude, longitude, status, total_orders, created_at, updated_at
FROM customers ORDER BY created_at DESC`

// ListCustomers returns all customer profiles, newest first.
func (r *Repo) ListCustomers(ctx context.Context) ([]*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

const deleteCustomerSQL = `DELETE FROM customers WHERE phone = $1`

// DeleteCustomer removes a customer profile. Returns domain.ErrNotFound if absent.
func (r *Repo) DeleteCustomer(ctx context.Context, phone string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCustomerSQL, phone)
	if err != nil {
		return postgres.MapError(err, "customer", phone)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", phone, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Shopkeepers
// ---------------------------------------------------------------------------

const getShopkeeperSQL = `
SELECT phone, name, shop_name, description, latitude, longitude, status, created_at, updated_at
FROM shopkeepers WHERE phone = $1`

// GetShopkeeper returns the shopkeeper profile for a phone number.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetShopkeeper(ctx context.Context, phone string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getShopkeeperSQL, phone)
	p, err := scanShopkeeper(row)
	if err != nil {
		return nil, postgres.MapError(err, "shopkeeper", phone)
	}
	return p, nil
}

const upsertShopkeeperSQL = `
INSERT INTO shopkeepers (phone, name, shop_name, description, latitude, longitude, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (phone) DO UPDATE SET
    name        = EXCLUDED.name,
    shop_name   = EXCLUDED.shop_name,
    description = EXCLUDED.description,
    latitude    = EXCLUDED.latitude,
    longitude   = EXCLUDED.longitude,
    status      = EXCLUDED.status,
    updated_at  = EXCLUDED.updated_at`

// UpsertShopkeeper inserts or overwrites a shopkeeper profile, preserving the
// creation timestamp on conflict.
func (r *Repo) UpsertShopkeeper(ctx context.Context, p *domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lat, lon := locationCols(p.Location)
	_, err := q.Exec(ctx, upsertShopkeeperSQL,
		p.Phone, p.Name, p.ShopName, p.Description, lat, lon, p.Status.String(), p.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "shopkeeper", p.Phone)
	}
	return nil
}

const listActiveShopkeepersSQL = `
SELECT phone, name, shop_name, description, latitude, longitude, status, created_at, updated_at
FROM shopkeepers WHERE status = 'active' ORDER BY created_at`

// ListActiveShopkeepers returns all active shopkeepers in onboarding order.
// Returns an empty slice when none are registered.
func (r *Repo) ListActiveShopkeepers(ctx context.Context) ([]*domain.Profile, error) {
	return r.listShopkeepers(ctx, listActiveShopkeepersSQL)
}

const listShopkeepersSQL = `
SELECT phone, name, shop_name, description, latitude, longitude, status, created_at, updated_at
FROM shopkeepers ORDER BY created_at DESC`

// ListShopkeepers returns all shopkeeper profiles, newest first.
func (r *Repo) ListShopkeepers(ctx context.Context) ([]*domain.Profile, error) {
	return r.listShopkeepers(ctx, listShopkeepersSQL)
}

func (r *Repo) listShopkeepers(ctx context.Context, sql string) ([]*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list shopkeepers: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanShopkeeper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopkeeper: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

const deleteShopkeeperSQL = `DELETE FROM shopkeepers WHERE phone = $1`

// DeleteShopkeeper removes a shopkeeper profile. Returns domain.ErrNotFound if absent.
func (r *Repo) DeleteShopkeeper(ctx context.Context, phone string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteShopkeeperSQL, phone)
	if err != nil {
		return postgres.MapError(err, "shopkeeper", phone)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopkeeper %s: %w", phone, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanCustomer(row pgx.Row) (*domain.Profile, error) {
	var (
		p        domain.Profile
		lat, lon *float64
		status   string
	)
	if err := row.Scan(&p.Phone, &p.Name, &lat, &lon, &status, &p.TotalOrders, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Role = domain.RoleCustomer
	p.Status = domain.ProfileStatus(status)
	p.Location = locationFromCols(lat, lon)
	return &p, nil
}

func scanShopkeeper(row pgx.Row) (*domain.Profile, error) {
	var (
		p        domain.Profile
		lat, lon *float64
		status   string
	)
	if err := row.Scan(&p.Phone, &p.Name, &p.ShopName, &p.Description, &lat, &lon, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Role = domain.RoleShopkeeper
	p.Status = domain.ProfileStatus(status)
	p.Location = locationFromCols(lat, lon)
	return &p, nil
}

func locationCols(l *domain.Location) (lat, lon *float64) {
	if l == nil {
		return nil, nil
	}
	return &l.Latitude, &l.Longitude
}

func locationFromCols(lat, lon *float64) *domain.Location {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Location{Latitude: *lat, Longitude: *lon}
}
