package engine

import "testing"

func TestGameObjectRefResolve(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	var ref GameObjectRef
	ref.Set(obj)

	if !ref.IsValid() {
		t.Error("ref should be valid after Set")
	}
	if ref.Get(scene) != obj {
		t.Error("ref should resolve to the object")
	}
}

func TestGameObjectRefEmpty(t *testing.T) {
	scene := NewScene("Test")

	var ref GameObjectRef
	if ref.IsValid() {
		t.Error("zero ref should be invalid")
	}
	if ref.Get(scene) != nil {
		t.Error("zero ref should resolve to nil")
	}
	if ref.Get(nil) != nil {
		t.Error("resolving against a nil scene should return nil")
	}
}

func TestGameObjectRefDestroyed(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	var ref GameObjectRef
	ref.Set(obj)
	obj.MarkDestroyed()

	if ref.Get(scene) != nil {
		t.Error("ref to a destroyed object should resolve to nil")
	}
}

func TestGameObjectRefClear(t *testing.T) {
	obj := NewGameObject("Target")

	var ref GameObjectRef
	ref.Set(obj)
	ref.Clear()

	if ref.IsValid() {
		t.Error("ref should be invalid after Clear")
	}

	ref.Set(obj)
	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the ref")
	}
}
