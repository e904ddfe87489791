package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, narrow
// enough to be satisfied by pgxmock in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type storeRepository struct {
	storage *Storage
}

type ratingRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Stores() repository.StoreRepository {
	return &storeRepository{storage: s}
}

func (s *Storage) Ratings() repository.RatingRepository {
	return &ratingRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'owner', 'user')),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stores (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            address TEXT NOT NULL,
            owner_id BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS ratings (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            store_id BIGINT NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
            value INT NOT NULL CHECK (value BETWEEN 1 AND 5),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, store_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_stores_owner ON stores(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_store ON ratings(store_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// mapError translates driver failures into domain error classes.
// Unique violations become ErrAlreadyExists, broken references become
// ErrNotFound, check violations on ratings become ErrInvalidRating, and
// retriable transport failures become ErrUnavailable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domainErrors.ErrAlreadyExists
		case "23503":
			return domainErrors.ErrNotFound
		case "23514":
			return domainErrors.ErrInvalidRating
		}
	}
	if pgconn.SafeToRetry(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnavailable, err)
	}
	return err
}

// --- UserRepository implementation ---

const userColumns = `id, name, email, password_hash, address, role, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, address, role)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Address, user.Role).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) Update(ctx context.Context, id int64, update model.UserUpdate, passwordHash *string) (*model.User, error) {
	const query = `UPDATE users
                   SET name = COALESCE($2, name),
                       address = COALESCE($3, address),
                       password_hash = COALESCE($4, password_hash),
                       updated_at = NOW()
                   WHERE id = $1
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, id, update.Name, update.Address, passwordHash))
}

func (r *userRepository) List(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error) {
	const query = `SELECT id, name, email, address, role FROM users
                   WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%')
                     AND ($2 = '' OR role = $2)
                   ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, filter.Search, string(filter.Role))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.PublicUser
	for rows.Next() {
		var u model.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.Role); err != nil {
			return nil, mapError(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		// stores.owner_id has no cascade: the constraint rejects
		// deleting an owner who still has stores.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domainErrors.ErrOwnedStoresExist
		}
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM users`)
}

// --- StoreRepository implementation ---

func (r *storeRepository) Create(ctx context.Context, store *model.Store) (*model.Store, error) {
	const query = `INSERT INTO stores (name, email, address, owner_id)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	created := *store
	err := r.storage.pool.QueryRow(ctx, query, store.Name, store.Email, store.Address, store.OwnerID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

const storeWithOwnerColumns = `s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
                               u.id, u.name, u.email`

func scanStoreWithOwner(row pgx.Row) (*model.StoreWithOwner, error) {
	var sw model.StoreWithOwner
	err := row.Scan(
		&sw.Store.ID, &sw.Store.Name, &sw.Store.Email, &sw.Store.Address,
		&sw.Store.OwnerID, &sw.Store.CreatedAt, &sw.Store.UpdatedAt,
		&sw.Owner.ID, &sw.Owner.Name, &sw.Owner.Email,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &sw, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.StoreWithOwner, error) {
	const query = `SELECT ` + storeWithOwnerColumns + `
                   FROM stores s JOIN users u ON u.id = s.owner_id
                   WHERE s.id=$1`
	return scanStoreWithOwner(r.storage.pool.QueryRow(ctx, query, id))
}

func storeOrderClause(sort model.StoreSort) string {
	switch sort {
	case model.StoreSortName:
		return `ORDER BY s.name, s.id`
	case model.StoreSortAddress:
		return `ORDER BY s.address, s.id`
	default:
		return `ORDER BY s.id`
	}
}

func (r *storeRepository) List(ctx context.Context, filter model.StoreFilter) ([]model.StoreWithOwner, error) {
	query := `SELECT ` + storeWithOwnerColumns + `
              FROM stores s JOIN users u ON u.id = s.owner_id
              WHERE ($1 = '' OR s.name ILIKE '%' || $1 || '%')
                AND ($2 = '' OR s.address ILIKE '%' || $2 || '%')
              ` + storeOrderClause(filter.SortBy)
	rows, err := r.storage.pool.Query(ctx, query, filter.Name, filter.Address)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.StoreWithOwner
	for rows.Next() {
		sw, err := scanStoreWithOwner(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sw)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *storeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Store, error) {
	const query = `SELECT id, name, email, address, owner_id, created_at, updated_at
                   FROM stores WHERE owner_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Store
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *storeRepository) Update(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error) {
	// Ownership is part of the predicate: a foreign store is
	// indistinguishable from a missing one.
	const query = `UPDATE stores
                   SET name = COALESCE($3, name),
                       email = COALESCE($4, email),
                       address = COALESCE($5, address),
                       updated_at = NOW()
                   WHERE id = $1 AND owner_id = $2
                   RETURNING id, name, email, address, owner_id, created_at, updated_at`
	var s model.Store
	err := r.storage.pool.QueryRow(ctx, query, id, ownerID, update.Name, update.Email, update.Address).
		Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *storeRepository) Delete(ctx context.Context, id, ownerID int64) error {
	const query = `DELETE FROM stores WHERE id=$1 AND owner_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *storeRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM stores WHERE owner_id=$1`
	var n int64
	if err := r.storage.pool.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (r *storeRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM stores`)
}

// --- RatingRepository implementation ---

func (r *ratingRepository) Upsert(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error) {
	// Single conditional write keyed by the unique pair: concurrent
	// submissions for the same (user, store) are serialized by the
	// constraint, never producing a second row. xmax = 0 distinguishes
	// a fresh insert from a conflict-update.
	const query = `INSERT INTO ratings (user_id, store_id, value)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, store_id)
                   DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
                   RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`
	rating := model.Rating{UserID: userID, StoreID: storeID, Value: value}
	var created bool
	err := r.storage.pool.QueryRow(ctx, query, userID, storeID, value).
		Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &created)
	if err != nil {
		return nil, false, mapError(err)
	}
	return &rating, created, nil
}

func (r *ratingRepository) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error) {
	const query = `SELECT id, user_id, store_id, value, created_at, updated_at
                   FROM ratings WHERE user_id=$1 AND store_id=$2`
	var rt model.Rating
	err := r.storage.pool.QueryRow(ctx, query, userID, storeID).
		Scan(&rt.ID, &rt.UserID, &rt.StoreID, &rt.Value, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &rt, nil
}

func (r *ratingRepository) ListByStore(ctx context.Context, storeID int64) ([]model.RatingWithRater, error) {
	const query = `SELECT r.id, r.user_id, r.store_id, r.value, r.created_at, r.updated_at, u.name, u.email
                   FROM ratings r JOIN users u ON u.id = r.user_id
                   WHERE r.store_id=$1 ORDER BY r.id`
	rows, err := r.storage.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.RatingWithRater
	for rows.Next() {
		var rr model.RatingWithRater
		if err := rows.Scan(&rr.ID, &rr.UserID, &rr.StoreID, &rr.Value, &rr.CreatedAt, &rr.UpdatedAt, &rr.RaterName, &rr.RaterEmail); err != nil {
			return nil, mapError(err)
		}
		result = append(result, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID int64) ([]model.RatingWithStore, error) {
	const query = `SELECT r.id, r.user_id, r.store_id, r.value, r.created_at, r.updated_at, s.name, s.address
                   FROM ratings r JOIN stores s ON s.id = r.store_id
                   WHERE r.user_id=$1 ORDER BY r.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.RatingWithStore
	for rows.Next() {
		var rs model.RatingWithStore
		if err := rows.Scan(&rs.ID, &rs.UserID, &rs.StoreID, &rs.Value, &rs.CreatedAt, &rs.UpdatedAt, &rs.StoreName, &rs.StoreAddress); err != nil {
			return nil, mapError(err)
		}
		result = append(result, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *ratingRepository) AggregateForStore(ctx context.Context, storeID int64) (model.StoreAggregate, error) {
	// Recomputed from live rows on every call. AVG over zero rows is
	// NULL, which keeps "no ratings yet" distinct from a zero mean.
	const query = `SELECT AVG(value)::double precision, COUNT(*) FROM ratings WHERE store_id=$1`
	var agg model.StoreAggregate
	if err := r.storage.pool.QueryRow(ctx, query, storeID).Scan(&agg.Average, &agg.Count); err != nil {
		return model.StoreAggregate{}, mapError(err)
	}
	return agg, nil
}

func (r *ratingRepository) AggregatesForStores(ctx context.Context, storeIDs []int64) (map[int64]model.StoreAggregate, error) {
	result := make(map[int64]model.StoreAggregate, len(storeIDs))
	if len(storeIDs) == 0 {
		return result, nil
	}

	const query = `SELECT store_id, AVG(value)::double precision, COUNT(*)
                   FROM ratings WHERE store_id = ANY($1) GROUP BY store_id`
	rows, err := r.storage.pool.Query(ctx, query, storeIDs)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var storeID int64
		var agg model.StoreAggregate
		if err := rows.Scan(&storeID, &agg.Average, &agg.Count); err != nil {
			return nil, mapError(err)
		}
		result[storeID] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *ratingRepository) ValuesByUser(ctx context.Context, userID int64) (map[int64]int, error) {
	const query = `SELECT store_id, value FROM ratings WHERE user_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make(map[int64]int)
	for rows.Next() {
		var storeID int64
		var value int
		if err := rows.Scan(&storeID, &value); err != nil {
			return nil, mapError(err)
		}
		result[storeID] = value
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM ratings`)
}

func (s *Storage) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
