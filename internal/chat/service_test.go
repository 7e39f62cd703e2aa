package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/savorspice/assistant/internal/ai"
	"github.com/savorspice/assistant/internal/reservation"
)

// fakeProvider records what it is asked and answers with canned text.
type fakeProvider struct {
	extraction    string
	extractionErr error
	reply         string
	replyErr      error

	extractionPrompt string
	chatMsgs         []ai.Message
}

func (p *fakeProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	p.chatMsgs = append([]ai.Message(nil), messages...)
	return p.reply, p.replyErr
}

func (p *fakeProvider) GenerateStructured(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	_ = ctx
	_ = schema
	p.extractionPrompt = prompt
	return p.extraction, p.extractionErr
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&reservation.Reservation{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB, prov ai.Provider) *Service {
	t.Helper()
	reg := ai.NewRegistry()
	reg.Register("fake", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		_ = model
		return prov, nil
	})
	return NewService(reservation.NewRepo(db), reg, "fake", "test")
}

func countReservations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&reservation.Reservation{}).Count(&n).Error; err != nil {
		t.Fatalf("count reservations: %v", err)
	}
	return n
}

const completeExtraction = `{
  "has_complete_reservation": true,
  "reservation_details": {
    "guest_name": "Grace Hopper",
    "guest_email": "grace@example.com",
    "reservation_date": "2026-09-15",
    "reservation_time": "18:30",
    "party_size": 4,
    "special_requests": "window table"
  }
}`

func TestRespond_CompleteExtractionInsertsOnce(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: completeExtraction, reply: "See you then!"}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "Book it please", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !result.ReservationCreated || result.ReservationID == nil {
		t.Fatalf("expected reservation to be created, got %+v", result)
	}
	if n := countReservations(t, db); n != 1 {
		t.Fatalf("expected exactly 1 insert, got %d", n)
	}

	var row reservation.Reservation
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Status != reservation.StatusConfirmed {
		t.Fatalf("expected status confirmed, got %q", row.Status)
	}
	if row.ID != *result.ReservationID {
		t.Fatalf("result id %d does not match stored id %d", *result.ReservationID, row.ID)
	}
	if row.GuestEmail == nil || *row.GuestEmail != "grace@example.com" {
		t.Fatalf("unexpected email: %v", row.GuestEmail)
	}
	if row.GuestPhone != nil {
		t.Fatalf("absent phone should be stored as NULL")
	}
}

func TestRespond_SystemPromptReflectsInsert(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: completeExtraction, reply: "Congrats!"}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "Book it please", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}

	if len(prov.chatMsgs) == 0 || prov.chatMsgs[0].Role != "system" {
		t.Fatalf("expected system prompt first, got %+v", prov.chatMsgs)
	}
	notice := fmt.Sprintf("#%d", *result.ReservationID)
	if !strings.Contains(prov.chatMsgs[0].Content, notice) {
		t.Fatalf("system prompt should cite the new reservation id %s", notice)
	}
}

func TestRespond_FlaggedTrueButMissingFieldIsNotInserted(t *testing.T) {
	db := openTestDB(t)
	// Model claims completeness but never extracted a date.
	prov := &fakeProvider{
		extraction: `{"has_complete_reservation": true, "reservation_details": {"guest_name": "Grace", "guest_email": "g@example.com", "reservation_time": "18:30", "party_size": 4}}`,
		reply:      "What date works for you?",
	}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "hi", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if result.ReservationCreated || result.ReservationID != nil {
		t.Fatalf("incomplete details must not create a reservation")
	}
	if n := countReservations(t, db); n != 0 {
		t.Fatalf("expected 0 inserts, got %d", n)
	}
	if result.Response != "What date works for you?" {
		t.Fatalf("conversation must continue, got %q", result.Response)
	}
}

func TestRespond_MissingContactIsNotInserted(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{
		extraction: `{"has_complete_reservation": true, "reservation_details": {"guest_name": "Grace", "reservation_date": "2026-09-15", "reservation_time": "18:30", "party_size": 4}}`,
		reply:      "Could I get a phone number or email?",
	}
	svc := newTestService(t, db, prov)

	if _, err := svc.Respond(context.Background(), "hi", nil); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if n := countReservations(t, db); n != 0 {
		t.Fatalf("expected 0 inserts without a contact channel, got %d", n)
	}
}

func TestRespond_UnparseableExtractionIsIncomplete(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: "I'd rather chat about the menu", reply: "Sure!"}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "hi", nil)
	if err != nil {
		t.Fatalf("extraction garbage must not abort the turn: %v", err)
	}
	if result.ReservationCreated {
		t.Fatalf("garbage extraction must not create a reservation")
	}
	if result.Response != "Sure!" {
		t.Fatalf("unexpected reply: %q", result.Response)
	}
}

func TestRespond_ExtractionErrorIsIncomplete(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extractionErr: errors.New("model overloaded"), reply: "Happy to help!"}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "hi", nil)
	if err != nil {
		t.Fatalf("extraction failure must not abort the turn: %v", err)
	}
	if result.ReservationCreated || countReservations(t, db) != 0 {
		t.Fatalf("extraction failure must not create a reservation")
	}
}

func TestRespond_InsertFailureIsSwallowed(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: completeExtraction, reply: "Noted!"}
	svc := newTestService(t, db, prov)

	// Force the insert to fail.
	if err := db.Exec("DROP TABLE reservations").Error; err != nil {
		t.Fatalf("drop table: %v", err)
	}

	result, err := svc.Respond(context.Background(), "Book it", nil)
	if err != nil {
		t.Fatalf("insert failure must not abort the turn: %v", err)
	}
	if result.ReservationCreated || result.ReservationID != nil {
		t.Fatalf("failed insert must leave reservation metadata absent")
	}
	if result.Response != "Noted!" {
		t.Fatalf("unexpected reply: %q", result.Response)
	}
}

func TestRespond_ResponderErrorAfterInsert(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: completeExtraction, replyErr: errors.New("provider down")}
	svc := newTestService(t, db, prov)

	if _, err := svc.Respond(context.Background(), "Book it", nil); err == nil {
		t.Fatalf("expected responder error to surface")
	}
	// The insert stays committed even though the reply failed.
	if n := countReservations(t, db); n != 1 {
		t.Fatalf("expected the insert to remain durable, got %d rows", n)
	}
}

func TestRespond_SkipsBootstrapTurn(t *testing.T) {
	db := openTestDB(t)
	prov := &fakeProvider{extraction: `{"has_complete_reservation": false}`, reply: "ok"}
	svc := newTestService(t, db, prov)

	history := []Turn{
		{Role: "assistant", Content: "bootstrap greeting"},
		{Role: "user", Content: "tell me about the menu"},
		{Role: "assistant", Content: "we have a lovely salmon"},
	}
	if _, err := svc.Respond(context.Background(), "sounds great", history); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if strings.Contains(prov.extractionPrompt, "bootstrap greeting") {
		t.Fatalf("extraction prompt must exclude the bootstrap turn")
	}
	if !strings.Contains(prov.extractionPrompt, "user: tell me about the menu") {
		t.Fatalf("extraction prompt missing transcript:\n%s", prov.extractionPrompt)
	}

	// system + 2 history turns + new message
	if len(prov.chatMsgs) != 4 {
		t.Fatalf("expected 4 provider messages, got %d", len(prov.chatMsgs))
	}
	last := prov.chatMsgs[len(prov.chatMsgs)-1]
	if last.Role != "user" || last.Content != "sounds great" {
		t.Fatalf("expected new user message last, got %+v", last)
	}
}

func TestRespond_NotConfigured(t *testing.T) {
	db := openTestDB(t)
	reg := ai.NewRegistry()
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		_ = model
		return nil, ai.ErrNotConfigured
	})
	svc := NewService(reservation.NewRepo(db), reg, "gemini", "gemini-2.5-flash")

	result, err := svc.Respond(context.Background(), "Book a table for 4", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if result.Response != NotConfiguredReply {
		t.Fatalf("expected fixed not-configured reply, got %q", result.Response)
	}
	if n := countReservations(t, db); n != 0 {
		t.Fatalf("degraded mode must never write, got %d rows", n)
	}
}

// chatOnlyProvider exercises the fallback for providers without
// structured-output support.
type chatOnlyProvider struct {
	replies []string
	calls   [][]ai.Message
}

func (p *chatOnlyProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	p.calls = append(p.calls, append([]ai.Message(nil), messages...))
	reply := p.replies[0]
	if len(p.replies) > 1 {
		p.replies = p.replies[1:]
	}
	return reply, nil
}

func TestRespond_ChatFallbackForExtraction(t *testing.T) {
	db := openTestDB(t)
	prov := &chatOnlyProvider{replies: []string{completeExtraction, "Booked!"}}
	svc := newTestService(t, db, prov)

	result, err := svc.Respond(context.Background(), "Book it", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !result.ReservationCreated {
		t.Fatalf("fallback extraction should still gate the insert")
	}
	if len(prov.calls) != 2 {
		t.Fatalf("expected 2 chat calls, got %d", len(prov.calls))
	}
	if !strings.Contains(prov.calls[0][0].Content, "single JSON object only") {
		t.Fatalf("fallback prompt missing JSON-only instruction")
	}
}
