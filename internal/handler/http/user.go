package http

import (
	"encoding/json"
	"net/http"

	"github.com/calkeep/go-cal-keeper/internal/app"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/utils"
	"github.com/calkeep/go-cal-keeper/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		log.Err(err).Msg("registration request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	creds := models.Credentials{Email: request.Email, Password: request.Password}
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.SuccessResponse, http.StatusOK)
}
