package http

import (
	"errors"
	"net/http"

	"github.com/calkeep/go-cal-keeper/internal/app"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/service"
	"github.com/calkeep/go-cal-keeper/internal/store"
)

// wireError pairs an HTTP status with the exact reason string the protocol
// promises in the response body.
type wireError struct {
	status  int
	message string
}

// The protocol reports every client-caused failure as 400 with a fixed
// reason string. Storage-level failures stay 500 and never leak details.
var errorResponseMap = map[error]wireError{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:       {http.StatusBadRequest, app.MsgIncorrectPassword},
	service.ErrInvalidTimeRange:    {http.StatusBadRequest, app.MsgInvalidTimeRange},

	store.ErrUserNotFound:       {http.StatusBadRequest, app.MsgUserNotFound},
	store.ErrEmailAlreadyExists: {http.StatusBadRequest, app.MsgUserAlreadyExists},
	store.ErrEventNotFound:      {http.StatusBadRequest, app.MsgEventNotFound},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	store.ErrScanningRows:     {http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
}

func responseFromError(err error) wireError {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return wireError{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

// writeError logs err and answers with the protocol reason for it.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	response := responseFromError(err)
	log.Err(err).Int("status", response.status).Msg(response.message)
	http.Error(w, response.message, response.status)
}
