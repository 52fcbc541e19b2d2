// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Redis are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"scholarsite/internal/database"
	"scholarsite/internal/middleware"
	"scholarsite/internal/render"
	"scholarsite/internal/session"
)

// recordingNotifier implements Notifier and records dispatched messages.
type recordingNotifier struct {
	enabled bool
	err     error
	sent    chan string
}

func newRecordingNotifier(enabled bool) *recordingNotifier {
	return &recordingNotifier{enabled: enabled, sent: make(chan string, 8)}
}

func (n *recordingNotifier) Enabled() bool { return n.enabled }

func (n *recordingNotifier) Send(_ context.Context, text string) error {
	n.sent <- text
	return n.err
}

// wait blocks until a notification is dispatched. Dispatch happens in a
// background goroutine after the HTTP response is written.
func (n *recordingNotifier) wait(t *testing.T) string {
	t.Helper()
	select {
	case text := <-n.sent:
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("no notification dispatched")
		return ""
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "scholarsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "scholarsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testRedisClient returns a Redis client for handler tests on DB 15.
func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("REDIS_HOST", "localhost")
	port := envOr("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds the dependencies for handler integration tests. The page
// cache is left nil so every request renders fresh.
type testEnv struct {
	DB       *sql.DB
	Stores   *Stores
	Renderer *render.Renderer
	Notifier *recordingNotifier
	Public   *Public
	Admin    *Admin
}

// newTestEnv creates a handler test environment backed by PostgreSQL.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	renderer, err := render.New(nil)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	st := NewStores(db)
	notifier := newRecordingNotifier(true)

	return &testEnv{
		DB:       db,
		Stores:   st,
		Renderer: renderer,
		Notifier: notifier,
		Public:   NewPublic(renderer, st, nil, notifier),
		Admin:    NewAdmin(st, nil, nil),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// postFormRequest builds a URL-encoded form POST.
func postFormRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// jsonRequest builds a JSON request with the given method and body.
func jsonRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func testSessionData(operatorID uuid.UUID, twoFADone bool) *session.Data {
	return &session.Data{
		OperatorID:  operatorID,
		Email:       "operator@example.com",
		DisplayName: "Test Operator",
		TwoFADone:   twoFADone,
	}
}

// countRows counts rows matching a single-column predicate.
func countRows(t *testing.T, db *sql.DB, table, column, value string) int {
	t.Helper()
	var n int
	// Table and column names come from the test itself, never user input.
	if err := db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE "+column+" = $1", value).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func cleanTable(t *testing.T, db *sql.DB, table, column string, values ...string) {
	t.Helper()
	for _, v := range values {
		db.Exec("DELETE FROM "+table+" WHERE "+column+" = $1", v)
	}
}
