package chat

import (
	"context"
	"encoding/json"
	"log"

	"github.com/savorspice/assistant/internal/ai"
)

// ReservationDetails mirrors the reservation fields the model extracts.
// Everything is best-effort; insertability is decided server-side.
type ReservationDetails struct {
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests"`
}

type ExtractionResult struct {
	HasCompleteReservation bool                `json:"has_complete_reservation"`
	ReservationDetails     *ReservationDetails `json:"reservation_details"`
}

// Insertable re-validates what the model claimed: the four hard-required
// fields plus at least one contact channel must be present. A flagged-true
// result missing any of them is not stored.
func (d *ReservationDetails) Insertable() bool {
	if d.GuestName == "" || d.ReservationDate == "" || d.ReservationTime == "" || d.PartySize <= 0 {
		return false
	}
	return d.GuestEmail != "" || d.GuestPhone != ""
}

// extract runs the structured-output call and decodes the result. It never
// fails the turn: any provider or decode error is logged and treated as
// "no reservation extracted".
func extract(ctx context.Context, provider ai.Provider, turns []Turn, message string) ExtractionResult {
	prompt := ExtractionPrompt(turns, message)

	var raw string
	var err error
	if sp, ok := provider.(ai.StructuredProvider); ok {
		raw, err = sp.GenerateStructured(ctx, prompt, ExtractionSchema())
	} else {
		raw, err = provider.Chat(ctx, []ai.Message{{
			Role:    "user",
			Content: prompt + "\n\nRespond with a single JSON object only, no explanations.",
		}})
	}
	if err != nil {
		log.Printf("chat: extraction call failed: %v", err)
		return ExtractionResult{}
	}

	var out ExtractionResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("chat: extraction returned unparseable JSON: %v", err)
		return ExtractionResult{}
	}
	return out
}
