package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(StyleChanged, a)
	d.Subscribe(StyleChanged, b)
	d.Subscribe(StyleRejected, b)

	d.Dispatch(Event{Type: StyleChanged, Data: "stars"})
	d.Dispatch(Event{Type: StyleRejected, Data: "bad"})

	if len(a.got) != 1 || a.got[0].Data != "stars" {
		t.Errorf("expected a to get one StyleChanged, got %v", a.got)
	}
	if len(b.got) != 2 {
		t.Errorf("expected b to get two events, got %d", len(b.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ExplosionSpawned, r)
	d.Unsubscribe(ExplosionSpawned, r)
	d.Dispatch(Event{Type: ExplosionSpawned})
	if len(r.got) != 0 {
		t.Errorf("expected no events after unsubscribe, got %d", len(r.got))
	}
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	var calls int
	d := NewDispatcher()
	d.Subscribe(ChatMessage, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: ChatMessage})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	var none *Dispatcher
	none.Dispatch(Event{Type: ChatMessage})
}
