package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	waves := &recorder{}
	bosses := &recorder{}
	d.Subscribe(WaveStarted, waves)
	d.Subscribe(BossSpawned, bosses)

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Wave: 3}})
	if len(waves.got) != 1 || len(bosses.got) != 0 {
		t.Fatalf("waves=%d bosses=%d", len(waves.got), len(bosses.got))
	}
	if data := waves.got[0].Data.(WaveData); data.Wave != 3 {
		t.Errorf("wave = %d, want 3", data.Wave)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameOver, r)
	d.Unsubscribe(GameOver, r)
	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(r.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(LootDropped, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: LootDropped})
	d.Dispatch(Event{Type: LootDropped})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemover{d: d}
	second := &recorder{}
	d.Subscribe(WaveEnded, first)
	d.Subscribe(WaveEnded, second)

	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: WaveEnded})

	if first.calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", first.calls)
	}
	if len(second.got) != 2 {
		t.Errorf("second listener got %d events, want 2", len(second.got))
	}
	if n := d.Listeners(WaveEnded); n != 1 {
		t.Errorf("Listeners = %d, want 1", n)
	}
}

func TestUnsubscribeFuncIsNoop(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(GameOver, f)
	d.Unsubscribe(GameOver, f)
	d.Dispatch(Event{Type: GameOver})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
