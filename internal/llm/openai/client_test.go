package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"strategy-backend/internal/llm"
)

func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	prev := apiURL
	apiURL = srv.URL
	t.Cleanup(func() {
		apiURL = prev
		srv.Close()
	})
}

func TestInvokeReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"analysis": {}}`}},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	})

	c, err := NewClient("test-key", "gpt-4o")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	out, err := c.Invoke(context.Background(), llm.Request{System: "be terse", Content: "profile"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if out != `{"analysis": {}}` {
		t.Fatalf("output = %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %#v", gotBody["messages"])
	}
	if _, ok := gotBody["temperature"]; !ok {
		t.Fatalf("expected explicit temperature for gpt-4o")
	}
}

func TestInvokeOmitsTemperatureForGPT5(t *testing.T) {
	var gotBody map[string]any
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	})

	c, err := NewClient("test-key", "gpt-5-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Invoke(context.Background(), llm.Request{Content: "hi"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if _, ok := gotBody["temperature"]; ok {
		t.Fatalf("gpt-5 models must not send temperature: %#v", gotBody)
	}
}

func TestInvokeAPIError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided", "type": "invalid_request_error"},
		})
	})

	c, err := NewClient("bad-key", "gpt-4o")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Invoke(context.Background(), llm.Request{Content: "hi"}); err == nil {
		t.Fatalf("expected API error")
	}
}

func TestInvokeNoChoices(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	c, err := NewClient("key", "gpt-4o")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Invoke(context.Background(), llm.Request{Content: "hi"}); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o"); err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
