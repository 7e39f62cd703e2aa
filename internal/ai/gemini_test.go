package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiChat_RoleMapping(t *testing.T) {
	var got geminiGenerateReq
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "k" {
			t.Fatalf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"hello "},{"text":"there"}]}}]}`)
	}))
	defer server.Close()

	p := NewGeminiProvider(server.URL, "k", "gemini-2.5-flash")
	reply, err := p.Chat(context.Background(), []Message{
		{Role: "system", Content: "be nice"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "again"},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "hello there" {
		t.Fatalf("parts not concatenated: %q", reply)
	}

	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be nice" {
		t.Fatalf("system message must become systemInstruction: %+v", got.SystemInstruction)
	}
	roles := make([]string, len(got.Contents))
	for i, c := range got.Contents {
		roles[i] = c.Role
	}
	want := []string{"user", "model", "user"}
	for i := range want {
		if roles[i] != want[i] {
			t.Fatalf("expected roles %v, got %v", want, roles)
		}
	}
}

func TestGeminiGenerateStructured_SendsSchema(t *testing.T) {
	var got geminiGenerateReq
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"ok\":true}"}]}}]}`)
	}))
	defer server.Close()

	p := NewGeminiProvider(server.URL, "k", "gemini-2.5-flash")
	schema := map[string]any{"type": "object"}
	raw, err := p.GenerateStructured(context.Background(), "extract", schema)
	if err != nil {
		t.Fatalf("generate structured: %v", err)
	}
	if raw != `{"ok":true}` {
		t.Fatalf("unexpected raw JSON: %q", raw)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("structured call must request JSON output: %+v", got.GenerationConfig)
	}
	if got.GenerationConfig.ResponseSchema["type"] != "object" {
		t.Fatalf("schema not forwarded: %+v", got.GenerationConfig.ResponseSchema)
	}
}

func TestGemini_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded"}}`)
	}))
	defer server.Close()

	p := NewGeminiProvider(server.URL, "k", "gemini-2.5-flash")
	if _, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}

func TestGemini_MissingKey(t *testing.T) {
	p := NewGeminiProvider("http://localhost:0", "", "gemini-2.5-flash")
	_, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
