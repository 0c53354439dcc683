package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type traceState struct {
	name  string
	trace *[]string
	next  State // куда перейти на первом Update
	sm    *StateMachine
}

func (s *traceState) Enter() { *s.trace = append(*s.trace, "enter "+s.name) }
func (s *traceState) Exit()  { *s.trace = append(*s.trace, "exit "+s.name) }
func (s *traceState) Update(float64) {
	*s.trace = append(*s.trace, "update "+s.name)
	if s.next != nil {
		next := s.next
		s.next = nil
		s.sm.SetState(next)
	}
}
func (s *traceState) Draw(*ebiten.Image) {}

func TestStateMachine_Transitions(t *testing.T) {
	var trace []string
	sm := NewStateMachine()
	pause := &traceState{name: "pause", trace: &trace, sm: sm}
	play := &traceState{name: "play", trace: &trace, sm: sm, next: pause}

	sm.SetState(play)
	sm.SetState(play)
	sm.Update(0.016)
	sm.Update(0.016)

	want := []string{"enter play", "update play", "exit play", "enter pause", "update pause"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if sm.Current() != State(pause) {
		t.Errorf("Current = %v, want pause", sm.Current())
	}
}

func TestStateMachine_NilState(t *testing.T) {
	sm := NewStateMachine()
	sm.Update(0.016)
	sm.Draw(nil)
	if sm.Current() != nil {
		t.Error("empty machine has a current state")
	}
}
