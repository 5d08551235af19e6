package wirework

import "testing"

func TestMergeDOMEvents(t *testing.T) {
	mark := func(hit *string, v string) DOMHandler {
		return func(e DOMEvent) { *hit = v }
	}

	t.Run("both nil stays nil", func(t *testing.T) {
		if got := mergeDOMEvents(nil, nil); got != nil {
			t.Errorf("mergeDOMEvents(nil, nil) = %v, want nil", got)
		}
	})

	t.Run("overlay wins on collision", func(t *testing.T) {
		var hit string
		base := map[string]DOMHandler{
			"click": mark(&hit, "base"),
			"keyup": mark(&hit, "base-keyup"),
		}
		over := map[string]DOMHandler{
			"click": mark(&hit, "over"),
		}

		merged := mergeDOMEvents(base, over)
		if len(merged) != 2 {
			t.Fatalf("merged %d handlers, want 2", len(merged))
		}

		merged["click"](BareEvent{})
		if hit != "over" {
			t.Errorf("collision dispatched %q, want over", hit)
		}
		merged["keyup"](BareEvent{})
		if hit != "base-keyup" {
			t.Errorf("non-colliding dispatched %q, want base-keyup", hit)
		}
	})

	t.Run("nil base with empty overlay is non-nil", func(t *testing.T) {
		if got := mergeDOMEvents(nil, map[string]DOMHandler{}); got == nil {
			t.Error("want empty non-nil map")
		}
	})
}

func TestTriggerHandlerSuppression(t *testing.T) {
	e := NewEvents()
	fired := 0
	e.Subscribe("semantic", func(args ...any) { fired++ }, nil)

	h := triggerHandler(e, "semantic")

	ev := &StubEvent{}
	h(ev)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if !ev.DefaultPrevented || !ev.PropagationStopped {
		t.Error("capable event was not suppressed")
	}

	// Events without the capabilities are passed through untouched.
	h(BareEvent{})
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
}
