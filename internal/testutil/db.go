package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/udisondev/zodiacbuddy/internal/db/migrations"
)

// sheetTablesTruncate clears every sheet table between tests sharing the container.
const sheetTablesTruncate = `TRUNCATE relic_note_target, monster_note_target_place, relic_note,
	event_item, monster_note_target, bnpc_name, place_name, fate, leve, territory_type`

// Один контейнер на тестовый бинарник; Ryuk удаляет его после выхода процесса.
var sharedPostgres struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB возвращает pool к PostgreSQL testcontainer с применёнными миграциями
// и пустыми таблицами листов. Skipped with -short, since it needs Docker.
func SetupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if testing.Short() {
		tb.Skip("postgres testcontainer skipped in -short mode")
	}
	ctx := context.Background()

	sharedPostgres.once.Do(func() {
		sharedPostgres.dsn, sharedPostgres.err = startPostgres(ctx)
	})
	if sharedPostgres.err != nil {
		tb.Fatalf("starting postgres: %v", sharedPostgres.err)
	}

	pool, err := pgxpool.New(ctx, sharedPostgres.dsn)
	if err != nil {
		tb.Fatalf("connecting to test db: %v", err)
	}
	tb.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, sheetTablesTruncate); err != nil {
		tb.Fatalf("truncating sheet tables: %v", err)
	}
	return pool
}

// startPostgres runs the container (BasicWaitStrategies: log occurrence(2) + port check)
// and applies the embedded migrations.
func startPostgres(ctx context.Context) (string, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sheets"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", fmt.Errorf("running container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("getting connection string: %w", err)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("opening sql.DB: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return "", fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return "", fmt.Errorf("running goose up: %w", err)
	}
	return dsn, nil
}
