package chat

import (
	"fmt"
	"strings"

	"github.com/savorspice/assistant/internal/menu"
)

// ExtractionSchema is the JSON schema the extraction call is constrained
// to: a completeness flag plus a best-effort details object.
func ExtractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"has_complete_reservation": map[string]any{"type": "boolean"},
			"reservation_details": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"guest_name":       map[string]any{"type": "string"},
					"guest_email":      map[string]any{"type": "string"},
					"guest_phone":      map[string]any{"type": "string"},
					"reservation_date": map[string]any{"type": "string"},
					"reservation_time": map[string]any{"type": "string"},
					"party_size":       map[string]any{"type": "integer"},
					"special_requests": map[string]any{"type": "string"},
				},
			},
		},
		"required": []string{"has_complete_reservation"},
	}
}

// ExtractionPrompt enumerates the required reservation fields and appends
// the transcript (prior turns plus the new message).
func ExtractionPrompt(turns []Turn, message string) string {
	var sb strings.Builder
	sb.WriteString(`Analyze this conversation and determine if the customer has provided all required information for a restaurant reservation.

Required information:
- guest_name: Customer's full name
- reservation_date: Date in YYYY-MM-DD format
- reservation_time: Time in HH:MM 24-hour format (must be between 17:00 and 21:00)
- party_size: Number of guests (1-8)
- At least one of: guest_email OR guest_phone

Optional:
- special_requests: Any special needs or requests

Set has_complete_reservation to true ONLY if ALL required fields are present and valid. Extract all available details into reservation_details.

Conversation:
`)
	for _, t := range turns {
		sb.WriteString(t.Role)
		sb.WriteString(": ")
		sb.WriteString(t.Content)
		sb.WriteString("\n")
	}
	if message != "" {
		sb.WriteString("user: ")
		sb.WriteString(message)
	}
	return sb.String()
}

// SystemPrompt assembles the responder's system prompt. It is built after
// the extraction/insert step so the notice always reflects this turn's
// outcome; newReservationID is nil when no reservation was created.
func SystemPrompt(newReservationID *uint64) string {
	notice := ""
	if newReservationID != nil {
		notice = fmt.Sprintf("\n\nIMPORTANT: A reservation was just created with ID #%d. Congratulate the customer and provide the confirmation details in a warm, professional manner. Include the reservation ID number.", *newReservationID)
	}

	return fmt.Sprintf(`You are a helpful AI assistant for %s restaurant. Your role is to:
1. Answer questions about the menu and help customers choose dishes
2. Help customers make reservations by collecting: name, date, time, party size, phone/email
3. Provide information about hours, location, and dietary options
4. Be warm, professional, and enthusiastic about the food

%s

Restaurant Information:
- Hours: 5:00 PM - 9:00 PM Daily
- Accepts reservations for 1-8 guests
- Location: 123 Culinary Lane, Downtown

When helping with reservations:
- Collect: name, date, time, party size, and contact (email or phone)
- Confirm availability for requested time
- Be encouraging and enthusiastic when confirming bookings%s

Keep responses concise and conversational. Focus on being helpful and creating a great dining experience.`,
		menu.Info.Name, menu.Context, notice)
}
