package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/calkeep/go-cal-keeper/internal/app"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/utils"
	"github.com/calkeep/go-cal-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		log.Err(err).Msg("event creation request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	event := models.Event{
		Name:  request.Name,
		Start: request.Start.Time,
		End:   request.End.Time,
		Notes: request.Notes,
	}

	savedEvent, err := h.services.EventService.CreateEvent(ctx, request.Credentials(), event)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Int64("event_id", savedEvent.ID).Int64("user_id", savedEvent.UserID).Msg("event created")

	utils.WriteJSON(w, models.SuccessResponse, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	eventID, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
	if err != nil {
		log.Err(err).Str("event_id", chi.URLParam(r, "event_id")).Msg("non-numeric event id")
		http.Error(w, app.MsgEventNotFound, http.StatusBadRequest)
		return
	}

	var request models.DeleteEventRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.validate.Struct(request); err != nil {
		log.Err(err).Msg("event deletion request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.EventService.DeleteEvent(ctx, request.Credentials(), eventID); err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Int64("event_id", eventID).Msg("event deleted")

	utils.WriteJSON(w, models.SuccessResponse, http.StatusOK)
}

func (h *Handler) queryEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.QueryEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		log.Err(err).Msg("event query request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	events, err := h.services.EventService.QueryEvents(ctx, request.Credentials(), request.Filter())
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Int("count", len(events)).Msg("events queried")

	utils.WriteJSON(w, models.NewEventResponses(events), http.StatusOK)
}
