package combokit

import "testing"

// option is the item type used across the engine tests
type option struct {
	ID    string
	Label string
}

var (
	optApple  = option{ID: "apple", Label: "Apple"}
	optBanana = option{ID: "banana", Label: "Banana"}
	optCherry = option{ID: "cherry", Label: "Cherry"}
	optDamson = option{ID: "damson", Label: "Damson"}
	optNone   = option{ID: "none", Label: "None"}
)

func optionID(o option) string    { return o.ID }
func optionLabel(o option) string { return o.Label }

func fruits() []option {
	return []option{optApple, optBanana, optCherry}
}

func testConfig(opts ...ConfigOption[option]) Config[option] {
	return NewConfig(optionID, optionLabel, opts...)
}

// step feeds one message through Update
func step(cfg Config[option], m Model[option], msg Msg, plugins ...Plugin[option]) Output[option] {
	return Update(cfg, Input[option]{Model: m, Msg: msg}, plugins...)
}

// drive feeds a message sequence through Update and returns the final model
func drive(cfg Config[option], m Model[option], msgs ...Msg) Model[option] {
	for _, msg := range msgs {
		m = Update(cfg, Input[option]{Model: m, Msg: msg}).Model
	}
	return m
}

func effectKinds(effects []Effect) []EffectKind {
	kinds := make([]EffectKind, 0, len(effects))
	for _, e := range effects {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind() == kind {
			return true
		}
	}
	return false
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind() == kind {
			return true
		}
	}
	return false
}

func countSkips(m Model[option], t MsgType) int {
	n := 0
	for _, queued := range m.PendingSkips() {
		if queued == t {
			n++
		}
	}
	return n
}

// mustHighlight asserts the model highlights index want
func mustHighlight(t *testing.T, m Model[option], want int) {
	t.Helper()
	idx, ok := m.HighlightIndex()
	if !ok {
		t.Fatalf("expected a highlighted state, got %s", m.tag)
	}
	if idx != want {
		t.Fatalf("highlight index = %d, want %d", idx, want)
	}
}
