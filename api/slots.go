package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"schedulink/slot"
)

type getSlotsResponse struct {
	Slots []slot.AvailableSlot `json:"slots"`
	Count int                  `json:"count"`
}

func (a *API) getSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.requestContext(r)
	defer cancel()

	// An absent or unparseable date means "no filter", not an error.
	var date *slot.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		if d, err := slot.ParseDate(raw); err == nil {
			date = &d
		}
	}

	slotAccessor := slot.NewAccessor(a.db)
	slots, err := slotAccessor.GetAvailableSlots(ctx, date)
	if err != nil {
		a.Error(w, r, http.StatusInternalServerError, err)
		return
	}
	if slots == nil {
		slots = []slot.AvailableSlot{}
	}

	a.JSON(w, http.StatusOK, getSlotsResponse{
		Slots: slots,
		Count: len(slots),
	})
}

type bookSlotRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (a *API) bookSlot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.requestContext(r)
	defer cancel()

	slotID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || slotID <= 0 {
		a.Error(w, r, http.StatusBadRequest, errors.New("invalid slot ID"))
		return
	}

	var req bookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.Error(w, r, http.StatusBadRequest, fmt.Errorf("validate: %w", err))
		return
	}

	slotAccessor := slot.NewAccessor(a.db)
	booked, err := slotAccessor.BookSlot(ctx, slotID, req.UserID)
	if err != nil {
		if errors.Is(err, slot.ErrSlotUnavailable) {
			a.Error(w, r, http.StatusConflict, err)
			return
		}
		a.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	a.JSON(w, http.StatusOK, booked)
}
