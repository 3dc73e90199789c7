package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type API struct {
	router   *mux.Router
	db       *sql.DB
	log      *logrus.Logger
	validate *validator.Validate
	timeout  time.Duration
}

func NewAPI(db *sql.DB, log *logrus.Logger, timeout time.Duration) *API {
	r := mux.NewRouter()
	r = r.PathPrefix("/fast").Subrouter()
	return &API{
		router:   r,
		db:       db,
		log:      log,
		validate: validator.New(),
		timeout:  timeout,
	}
}

func (a *API) Router() *mux.Router {
	return a.router
}

func (a *API) Handler() http.Handler {
	h := requestID(a.router)
	h = handlers.LoggingHandler(os.Stdout, h)
	return handlers.RecoveryHandler()(h)
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	a.router.HandleFunc("/users", a.getUsers).Methods(http.MethodGet)
	a.router.HandleFunc("/slots", a.getSlots).Methods(http.MethodGet)
	a.router.HandleFunc("/slots/{id}/book", a.bookSlot).Methods(http.MethodPost)
}

// requestContext bounds the request, including waits for a pooled connection
// or a row lock held by another transaction.
func (a *API) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), a.timeout)
}

func (a *API) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (a *API) Error(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		a.log.WithFields(logrus.Fields{
			"request_id": RequestIDFrom(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
	}
	a.JSON(w, status, errorResponse{Detail: err.Error()})
}
