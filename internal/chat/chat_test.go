package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		var req struct {
			UserInput string `json:"user_input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"reply": "echo " + req.UserInput})
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL).Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "echo hello" {
		t.Errorf("expected %q, got %q", "echo hello", reply)
	}
}

func TestClientSendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Send(context.Background(), "hi"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

type fixedPrompt struct {
	text string
	err  error
}

func (p fixedPrompt) Prompt(context.Context) (string, error) { return p.text, p.err }

type fakeSender struct {
	reply string
	err   error
}

func (s fakeSender) Send(_ context.Context, text string) (string, error) { return s.reply, s.err }

func waitIdle(t *testing.T, r *Relay) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for r.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("relay did not finish")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRelayExchange(t *testing.T) {
	r := NewRelay(fakeSender{reply: "I'm here"}, fixedPrompt{text: "  are you there? "})
	if !r.Talk(context.Background()) {
		t.Fatal("expected exchange to start")
	}
	waitIdle(t, r)
	msgs := r.Drain()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].String() != "You: are you there?" || msgs[1].String() != "Companion: I'm here" {
		t.Errorf("unexpected transcript %q / %q", msgs[0], msgs[1])
	}
	if len(r.Drain()) != 0 {
		t.Error("expected drain to empty the queue")
	}
}

func TestRelayCanceledPrompt(t *testing.T) {
	r := NewRelay(fakeSender{reply: "unused"}, fixedPrompt{err: ErrCanceled})
	r.Talk(context.Background())
	waitIdle(t, r)
	if msgs := r.Drain(); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestRelaySendFailureKeepsUserLine(t *testing.T) {
	r := NewRelay(fakeSender{err: errors.New("offline")}, fixedPrompt{text: "hi"})
	r.Talk(context.Background())
	waitIdle(t, r)
	msgs := r.Drain()
	if len(msgs) != 1 || msgs[0].From != User {
		t.Errorf("expected only the user line, got %v", msgs)
	}
}

type blockingPrompt struct{ release chan struct{} }

func (p blockingPrompt) Prompt(context.Context) (string, error) {
	<-p.release
	return "", ErrCanceled
}

func TestRelayOneExchangeAtATime(t *testing.T) {
	p := blockingPrompt{release: make(chan struct{})}
	r := NewRelay(fakeSender{}, p)
	if !r.Talk(context.Background()) {
		t.Fatal("expected first exchange to start")
	}
	if r.Talk(context.Background()) {
		t.Error("expected second exchange to be refused while busy")
	}
	close(p.release)
	waitIdle(t, r)
}
