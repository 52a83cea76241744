package models

// RegisterUserRequest is the body of POST /user.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEventRequest is the body of POST /event. Credentials ride along with
// the payload since every call re-authenticates.
type CreateEventRequest struct {
	Email    string    `json:"email" validate:"required"`
	Password string    `json:"password" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Start    Timestamp `json:"start" validate:"required"`
	End      Timestamp `json:"end" validate:"required"`
	Notes    string    `json:"notes,omitempty"`
}

// DeleteEventRequest is the body of DELETE /event/{event_id}.
type DeleteEventRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// QueryEventsRequest is the body of POST /events. All filters are optional.
type QueryEventsRequest struct {
	Email        string     `json:"email" validate:"required"`
	Password     string     `json:"password" validate:"required"`
	Start        *Timestamp `json:"start,omitempty"`
	End          *Timestamp `json:"end,omitempty"`
	SearchString string     `json:"search_string,omitempty"`
}

// Credentials extracts the credential pair from the request.
func (r CreateEventRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// Credentials extracts the credential pair from the request.
func (r DeleteEventRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// Credentials extracts the credential pair from the request.
func (r QueryEventsRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// Filter converts the optional query fields into an EventFilter.
func (r QueryEventsRequest) Filter() EventFilter {
	filter := EventFilter{Search: r.SearchString}
	if r.Start != nil {
		start := r.Start.Time
		filter.Start = &start
	}
	if r.End != nil {
		end := r.End.Time
		filter.End = &end
	}

	return filter
}
