package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calkeep/go-cal-keeper/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// Credentials identify the account this adapter acts for. They are
	// attached to every request body; nothing is cached between calls.
	Credentials models.Credentials
}

type httpServerAdapter struct {
	client *resty.Client
	creds  models.Credentials
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, creds: cfg.Credentials}
}

func (h *httpServerAdapter) Register(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterUserRequest{
			Email:    h.creds.Email,
			Password: h.creds.Password,
		}).
		Post("/user")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateEvent(ctx context.Context, event models.Event) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateEventRequest{
			Email:    h.creds.Email,
			Password: h.creds.Password,
			Name:     event.Name,
			Start:    models.NewTimestamp(event.Start),
			End:      models.NewTimestamp(event.End),
			Notes:    event.Notes,
		}).
		Post("/event")
	if err != nil {
		return fmt.Errorf("create event request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteEvent(ctx context.Context, eventID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteEventRequest{
			Email:    h.creds.Email,
			Password: h.creds.Password,
		}).
		Delete("/event/" + strconv.FormatInt(eventID, 10))
	if err != nil {
		return fmt.Errorf("delete event request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Events(ctx context.Context, filter models.EventFilter) ([]models.EventResponse, error) {
	request := models.QueryEventsRequest{
		Email:        h.creds.Email,
		Password:     h.creds.Password,
		SearchString: filter.Search,
	}
	if filter.Start != nil {
		start := models.NewTimestamp(*filter.Start)
		request.Start = &start
	}
	if filter.End != nil {
		end := models.NewTimestamp(*filter.End)
		request.End = &end
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/events")
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var events []models.EventResponse
	if err = json.Unmarshal(resp.Body(), &events); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}

	return events, nil
}
