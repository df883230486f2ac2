package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ BlobStore = (*PostgresStore)(nil)

// PostgresStore blob store sobre PostgreSQL: una fila jsonb por colección.
// Las colecciones se guardan completas; no hay escrituras parciales.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crea el pool, verifica la conexión y asegura la tabla.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS almacen_collections (
			kind       text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla de colecciones: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Load devuelve el blob del kind o (nil, nil) si la fila no existe.
func (s *PostgresStore) Load(ctx context.Context, kind string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM almacen_collections WHERE kind = $1`, kind,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %s: %w", kind, err)
	}
	return data, nil
}

// Save reemplaza el blob completo del kind (upsert).
func (s *PostgresStore) Save(ctx context.Context, kind string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO almacen_collections (kind, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (kind) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		kind, data)
	if err != nil {
		return fmt.Errorf("escribir colección %s: %w", kind, err)
	}
	return nil
}

// Delete elimina la fila del kind.
func (s *PostgresStore) Delete(ctx context.Context, kind string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM almacen_collections WHERE kind = $1`, kind)
	if err != nil {
		return fmt.Errorf("eliminar colección %s: %w", kind, err)
	}
	return nil
}

// Close cierra el pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
