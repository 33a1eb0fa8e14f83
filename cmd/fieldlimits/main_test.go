package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/requestid"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/sqlite"
	"github.com/pmalmgren/constgeneric-field-limits/svc/profile"
)

func TestRouter(t *testing.T) {
	ctx := context.Background()
	cfg := sqlite.Config{Path: ":memory:", MigrationsTable: "schema_migrations"}
	log := slog.New(slog.DiscardHandler)

	db, err := sqlite.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db, profile.Migrations(), cfg, log))

	h := router(db, log)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(`{"handle":"gopher","display_name":"Gopher"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}
