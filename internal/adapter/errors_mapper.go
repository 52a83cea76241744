package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/calkeep/go-cal-keeper/internal/app"
	"github.com/go-resty/resty/v2"
)

// The server answers every client-caused failure with 400 and a fixed
// reason string in the body, so the reason is what discriminates errors.
var reasonErrorMap = map[string]error{
	app.MsgUserNotFound:      ErrUserNotFound,
	app.MsgIncorrectPassword: ErrIncorrectPassword,
	app.MsgUserAlreadyExists: ErrUserAlreadyExists,
	app.MsgInvalidTimeRange:  ErrInvalidTimeRange,
	app.MsgEventNotFound:     ErrEventNotFound,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if sentinel, ok := reasonErrorMap[body]; ok {
			return fmt.Errorf("%w: %s", sentinel, body)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerFailure, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
