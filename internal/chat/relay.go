// internal/chat/relay.go
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"particle-backdrop/internal/config"
)

type Speaker int

const (
	User Speaker = iota
	Companion
)

// Message is one transcript line.
type Message struct {
	From Speaker
	Text string
}

func (m Message) String() string {
	if m.From == Companion {
		return "Companion: " + m.Text
	}
	return "You: " + m.Text
}

// Sender sends user text and returns a reply.
type Sender interface {
	Send(ctx context.Context, text string) (string, error)
}

// Relay runs one prompt-and-send exchange at a time off the frame goroutine
// and hands the resulting messages back through Drain.
type Relay struct {
	sender   Sender
	prompter Prompter
	out      chan Message
	busy     atomic.Bool
}

func NewRelay(sender Sender, prompter Prompter) *Relay {
	return &Relay{
		sender:   sender,
		prompter: prompter,
		out:      make(chan Message, config.ChatBacklog),
	}
}

// Talk starts an exchange unless one is already running. It never blocks.
func (r *Relay) Talk(ctx context.Context) bool {
	if !r.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer r.busy.Store(false)
		r.exchange(ctx)
	}()
	return true
}

func (r *Relay) Busy() bool {
	return r.busy.Load()
}

func (r *Relay) exchange(ctx context.Context) {
	text, err := r.prompter.Prompt(ctx)
	if err != nil {
		if !errors.Is(err, ErrCanceled) {
			log.Printf("chat: prompt: %v", err)
		}
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	r.publish(Message{From: User, Text: text})

	reply, err := r.sender.Send(ctx, text)
	if err != nil {
		log.Printf("chat: %v", err)
		return
	}
	r.publish(Message{From: Companion, Text: reply})
}

func (r *Relay) publish(m Message) {
	select {
	case r.out <- m:
	default:
		log.Printf("chat: transcript backlog full, dropping %q", m.String())
	}
}

// Drain returns the messages that arrived since the last call.
func (r *Relay) Drain() []Message {
	var msgs []Message
	for {
		select {
		case m := <-r.out:
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}
