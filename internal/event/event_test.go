package event

import "testing"

type countingListener struct {
	events []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.events = append(c.events, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(EnemyKilled, l)

	d.Dispatch(Event{Type: EnemyKilled, Data: 42})
	d.Dispatch(Event{Type: WaveStarted})

	if len(l.events) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(l.events))
	}
	if l.events[0].Data != 42 {
		t.Errorf("payload: got %v, want 42", l.events[0].Data)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(CoreDamaged, l)
	d.Unsubscribe(CoreDamaged, l)

	d.Dispatch(Event{Type: CoreDamaged})

	if len(l.events) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(l.events))
	}
}

func TestDispatchWithoutSubscribersIsSafe(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: GameOver})
}
