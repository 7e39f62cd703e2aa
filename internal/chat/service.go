package chat

import (
	"context"
	"errors"
	"log"

	"github.com/savorspice/assistant/internal/ai"
	"github.com/savorspice/assistant/internal/reservation"
)

// NotConfiguredReply is returned verbatim when no provider credential is
// present. The endpoint degrades instead of failing.
const NotConfiguredReply = "I apologize, but the AI service is not configured yet. Please add your Gemini API key in the app settings."

type Service struct {
	reservations *reservation.Repo
	registry     *ai.Registry
	provider     string
	model        string
}

func NewService(reservations *reservation.Repo, registry *ai.Registry, provider, model string) *Service {
	if provider == "" {
		provider = "gemini"
	}
	return &Service{reservations: reservations, registry: registry, provider: provider, model: model}
}

// Respond runs one chat turn: extraction, conditional insert, then the
// conversational reply. The two provider calls are strictly sequential —
// the insert outcome feeds the second call's system prompt.
//
// Extraction and insert failures never abort the turn. A returned error
// means only the final reply could not be produced; any insert that
// already happened stays committed.
func (s *Service) Respond(ctx context.Context, message string, history []Turn) (*TurnResult, error) {
	provider, err := s.registry.Get(ctx, s.provider, s.model)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return &TurnResult{Response: NotConfiguredReply}, nil
		}
		return nil, err
	}

	// The first turn is the client's bootstrap greeting, not part of the
	// conversation proper.
	turns := history
	if len(turns) > 0 {
		turns = turns[1:]
	}

	ext := extract(ctx, provider, turns, message)

	var reservationID *uint64
	if ext.HasCompleteReservation && ext.ReservationDetails != nil && ext.ReservationDetails.Insertable() {
		res := toReservation(ext.ReservationDetails)
		if err := s.reservations.Create(ctx, res); err != nil {
			// Swallowed: the guest can retry or book directly.
			log.Printf("chat: create reservation failed: %v", err)
		} else {
			reservationID = &res.ID
		}
	}

	msgs := make([]ai.Message, 0, len(turns)+2)
	msgs = append(msgs, ai.Message{Role: "system", Content: SystemPrompt(reservationID)})
	for _, t := range turns {
		role := "user"
		if t.Role == "assistant" {
			role = "assistant"
		}
		msgs = append(msgs, ai.Message{Role: role, Content: t.Content})
	}
	msgs = append(msgs, ai.Message{Role: "user", Content: message})

	reply, err := provider.Chat(ctx, msgs)
	if err != nil {
		return nil, err
	}

	return &TurnResult{
		Response:           reply,
		ReservationCreated: reservationID != nil,
		ReservationID:      reservationID,
	}, nil
}

func toReservation(d *ReservationDetails) *reservation.Reservation {
	return &reservation.Reservation{
		GuestName:       d.GuestName,
		GuestEmail:      optional(d.GuestEmail),
		GuestPhone:      optional(d.GuestPhone),
		ReservationDate: d.ReservationDate,
		ReservationTime: d.ReservationTime,
		PartySize:       d.PartySize,
		SpecialRequests: optional(d.SpecialRequests),
		Status:          reservation.StatusConfirmed,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
