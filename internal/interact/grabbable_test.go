package interact

import (
	"testing"

	"handlab/internal/engine"
	"handlab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestHand(name string) *Hand {
	h := NewHand(input.Left, nil)
	obj := engine.NewGameObject(name)
	obj.AddComponent(h)
	return h
}

func TestHoldableGrabRelease(t *testing.T) {
	_, g := grabbableAt("Cup", rl.Vector3{})
	hand := newTestHand("Hand")

	grabs, releases := 0, 0
	g.OnGrabbed.AddListener(func(*Hand) { grabs++ })
	g.OnReleased.AddListener(func(*Hand) { releases++ })

	if !g.TryGrab(hand) {
		t.Fatal("Free object should accept a grab")
	}
	if g.HeldBy() != hand {
		t.Error("HeldBy should report the grabbing hand")
	}
	if !g.TryRelease(hand) {
		t.Fatal("Holder should be able to release")
	}
	if g.HeldBy() != nil {
		t.Error("HeldBy should clear on release")
	}
	if grabs != 1 || releases != 1 {
		t.Errorf("Expected 1 grab and 1 release event, got %d/%d", grabs, releases)
	}
}

func TestHoldableReentrantGrab(t *testing.T) {
	_, g := grabbableAt("Cup", rl.Vector3{})
	hand := newTestHand("Hand")

	grabs := 0
	g.OnGrabbed.AddListener(func(*Hand) { grabs++ })

	g.TryGrab(hand)
	if !g.TryGrab(hand) {
		t.Error("Re-grab by the holder should be accepted")
	}
	if grabs != 1 {
		t.Errorf("Re-grab must not re-fire the event, got %d grabs", grabs)
	}
}

func TestHoldableRefusesSecondHand(t *testing.T) {
	_, g := grabbableAt("Cup", rl.Vector3{})
	left := newTestHand("Left")
	right := newTestHand("Right")

	g.TryGrab(left)
	if g.TryGrab(right) {
		t.Error("Held object should refuse another hand")
	}
	if g.HeldBy() != left {
		t.Error("Refused grab must not change the holder")
	}
}

func TestHoldableRefusesWrongRelease(t *testing.T) {
	_, g := grabbableAt("Cup", rl.Vector3{})
	left := newTestHand("Left")
	right := newTestHand("Right")

	if g.TryRelease(left) {
		t.Error("Releasing an unheld object should be refused")
	}

	g.TryGrab(left)
	if g.TryRelease(right) {
		t.Error("Non-holder release should be refused")
	}
	if g.HeldBy() != left {
		t.Error("Refused release must not change the holder")
	}
}

func TestHoldableRefusesGrabWhenDestroyed(t *testing.T) {
	obj, g := grabbableAt("Cup", rl.Vector3{})
	obj.MarkDestroyed()

	if g.TryGrab(newTestHand("Hand")) {
		t.Error("Destroyed object should refuse grabs")
	}
}

func TestFirstGrabbableDirect(t *testing.T) {
	obj, g := grabbableAt("Cup", rl.Vector3{})

	if FirstGrabbable(obj) != Grabbable(g) {
		t.Error("Expected the object's own grabbable")
	}
}

func TestFirstGrabbableDeclarationOrder(t *testing.T) {
	obj, first := grabbableAt("Cup", rl.Vector3{})
	second := &testGrabbable{}
	obj.AddComponent(second)

	if FirstGrabbable(obj) != Grabbable(first) {
		t.Error("Expected the first declared grabbable")
	}
}

func TestFirstGrabbableFallsBackToRoot(t *testing.T) {
	root, g := grabbableAt("Pistol", rl.Vector3{})
	barrel := engine.NewGameObject("Barrel")
	root.AddChild(barrel)

	if FirstGrabbable(barrel) != Grabbable(g) {
		t.Error("Expected the hierarchy root's grabbable via a child hit")
	}
}

func TestFirstGrabbableNone(t *testing.T) {
	obj := engine.NewGameObject("Wall")
	if FirstGrabbable(obj) != nil {
		t.Error("Objects without a grabbable should resolve to nil")
	}

	dead, _ := grabbableAt("Cup", rl.Vector3{})
	dead.MarkDestroyed()
	if FirstGrabbable(dead) != nil {
		t.Error("Destroyed objects should resolve to nil")
	}
}
