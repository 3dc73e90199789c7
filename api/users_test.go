package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedulink/api"
)

func setupAPI(t *testing.T) (*api.API, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	a := api.NewAPI(db, log, 5*time.Second)
	a.RegisterRoutes()
	return a, dbMock
}

func TestUsersAPI(t *testing.T) {
	t.Parallel()

	selectQuery := regexp.QuoteMeta(`SELECT id, name, email, phone, created_at FROM users ORDER BY created_at DESC`)

	t.Run("get users", func(t *testing.T) {
		t.Parallel()
		a, dbMock := setupAPI(t)

		newer := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
		older := newer.Add(-24 * time.Hour)
		dbMock.ExpectQuery(selectQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"}).
				AddRow(int64(2), "Bob", "bob@example.com", "555-0102", newer).
				AddRow(int64(1), "Alice", "alice@example.com", nil, older))

		req := httptest.NewRequest(http.MethodGet, "/fast/users", nil)
		rec := httptest.NewRecorder()

		a.Router().ServeHTTP(rec, req)

		require.NoError(t, dbMock.ExpectationsWereMet())
		assert.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Users []map[string]any `json:"users"`
			Count int              `json:"count"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, 2, res.Count)
		require.Len(t, res.Users, 2)
		assert.Equal(t, "Bob", res.Users[0]["name"])
		assert.Equal(t, "Alice", res.Users[1]["name"])
		assert.Nil(t, res.Users[1]["phone"])
	})

	t.Run("get users empty", func(t *testing.T) {
		t.Parallel()
		a, dbMock := setupAPI(t)

		dbMock.ExpectQuery(selectQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"}))

		req := httptest.NewRequest(http.MethodGet, "/fast/users", nil)
		rec := httptest.NewRecorder()

		a.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"users":[],"count":0}`, rec.Body.String())
	})

	t.Run("get users storage error", func(t *testing.T) {
		t.Parallel()
		a, dbMock := setupAPI(t)

		dbMock.ExpectQuery(selectQuery).WillReturnError(errors.New("connection reset"))

		req := httptest.NewRequest(http.MethodGet, "/fast/users", nil)
		rec := httptest.NewRecorder()

		a.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var res map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Contains(t, res["detail"], "query users")
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		a, _ := setupAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/fast/health", nil)
		rec := httptest.NewRecorder()

		a.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}
