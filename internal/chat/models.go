package chat

// Turn is one client-supplied message. The server keeps no session;
// the client resends the full history on every request.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// TurnResult is the outcome of one chat turn: the assistant's reply plus
// whether this turn created a reservation.
type TurnResult struct {
	Response           string
	ReservationCreated bool
	ReservationID      *uint64
}
