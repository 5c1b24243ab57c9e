package components

import (
	"testing"

	"handlab/internal/engine"
	"handlab/internal/interact"
)

func TestAllComponentTypesRegistered(t *testing.T) {
	for _, name := range []string{
		"BoxCollider", "SphereCollider", "Rigidbody",
		"Prop", "Lever", "Pistol", "ShapeRenderer",
	} {
		if c := engine.CreateComponent(name, nil); c == nil {
			t.Errorf("Component type %q not registered", name)
		}
	}
}

func TestPropSerializeRoundTrip(t *testing.T) {
	p := NewProp()
	p.InputMode = interact.ModeTrigger

	name, props, ok := engine.SerializeComponent(p)
	if !ok || name != "Prop" {
		t.Fatalf("Expected a Prop serializer, got %q ok=%v", name, ok)
	}

	rebuilt, ok := engine.CreateComponent(name, props).(*Prop)
	if !ok {
		t.Fatal("Factory should rebuild a Prop")
	}
	if rebuilt.InputMode != interact.ModeTrigger {
		t.Errorf("Mode lost in round trip, got %v", rebuilt.InputMode)
	}
}

func TestColliderSerializeKeepsTriggerFlag(t *testing.T) {
	col := NewSphereCollider(1.5)
	col.IsTrigger = true

	name, props, ok := engine.SerializeComponent(col)
	if !ok {
		t.Fatal("Expected a SphereCollider serializer")
	}

	rebuilt, ok := engine.CreateComponent(name, props).(*SphereCollider)
	if !ok {
		t.Fatal("Factory should rebuild a SphereCollider")
	}
	if rebuilt.Radius != 1.5 || !rebuilt.IsTrigger {
		t.Errorf("Collider lost fields in round trip: radius=%v trigger=%v",
			rebuilt.Radius, rebuilt.IsTrigger)
	}
}
