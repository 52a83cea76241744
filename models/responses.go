package models

// SuccessResponse is the body returned by every mutating endpoint.
// The protocol reports success as the bare JSON string "Success".
const SuccessResponse = "Success"

// EventResponse is the query response shape: id, start, end, name and owner.
// Notes are intentionally excluded from responses.
type EventResponse struct {
	ID     int64     `json:"id"`
	Start  Timestamp `json:"start"`
	End    Timestamp `json:"end"`
	Name   string    `json:"name"`
	UserID int64     `json:"user_id"`
}

// NewEventResponse converts a stored event into its response shape.
func NewEventResponse(event Event) EventResponse {
	return EventResponse{
		ID:     event.ID,
		Start:  NewTimestamp(event.Start),
		End:    NewTimestamp(event.End),
		Name:   event.Name,
		UserID: event.UserID,
	}
}

// NewEventResponses converts a slice of stored events, preserving order.
func NewEventResponses(events []Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewEventResponse(event))
	}

	return responses
}
