package repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// DefaultSlot — имя слота снимка корзины по умолчанию.
const DefaultSlot = "cart"

type PostgresSnapshotRepo struct {
	Pool *pgxpool.Pool
	Slot string
}

func NewPostgresSnapshotRepo(pool *pgxpool.Pool, slot string) *PostgresSnapshotRepo {
	if slot == "" {
		slot = DefaultSlot
	}
	return &PostgresSnapshotRepo{Pool: pool, Slot: slot}
}

func (r *PostgresSnapshotRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	_, err = r.Pool.Exec(ctx, `INSERT INTO cart_snapshots(slot, payload) VALUES($1, $2)
        ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload`, r.Slot, payload)
	return err
}

func (r *PostgresSnapshotRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	var payload []byte
	err := r.Pool.QueryRow(ctx, `SELECT payload FROM cart_snapshots WHERE slot = $1`, r.Slot).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		// битый снимок равнозначен пустой корзине
		return nil, nil
	}
	return lines, nil
}

func (r *PostgresSnapshotRepo) Clear(ctx context.Context) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM cart_snapshots WHERE slot = $1`, r.Slot)
	return err
}

var _ domain.SnapshotRepository = (*PostgresSnapshotRepo)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS cart_snapshots (
  slot text PRIMARY KEY,
  payload jsonb NOT NULL
);`)
	return err
}
