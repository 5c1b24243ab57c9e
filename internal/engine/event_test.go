package engine

import "testing"

func TestEventInvoke(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })

	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e Event
	e.AddListener(nil)

	if e.GetListenerCount() != 0 {
		t.Error("nil listeners should not be registered")
	}
	e.Invoke() // must not panic
}

func TestEventRemoveAll(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.RemoveAllListeners()

	e.Invoke()

	if calls != 0 {
		t.Error("listeners should not fire after RemoveAllListeners")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })

	e.Invoke(7)
	e.Invoke(9)

	if len(got) != 2 || got[0] != 7 || got[1] != 9 {
		t.Errorf("Expected [7 9], got %v", got)
	}
}
