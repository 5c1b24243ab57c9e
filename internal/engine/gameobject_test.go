package engine

import "testing"

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if !obj.Alive() {
		t.Error("new object should be alive")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"grabbable", "metal"}

	if !obj.HasTag("grabbable") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("wooden") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}
	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectRoot(t *testing.T) {
	top := NewGameObject("Top")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	top.AddChild(mid)
	mid.AddChild(leaf)

	if leaf.Root() != top {
		t.Error("Root should walk to the topmost ancestor")
	}
	if top.Root() != top {
		t.Error("Root of an unparented object is itself")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}
	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent on nil object should return zero value")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op
	obj.Start()
}

func TestMarkDestroyedPropagates(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	parent.MarkDestroyed()

	if parent.Alive() {
		t.Error("destroyed object should not be alive")
	}
	if child.Alive() {
		t.Error("children of a destroyed object should not be alive")
	}
}

func TestDestroyedObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	counter := &updateCounter{}
	obj.AddComponent(counter)
	obj.Start()

	obj.Update(0.016)
	obj.MarkDestroyed()
	obj.Update(0.016)

	if counter.updates != 1 {
		t.Errorf("Expected 1 update before destruction, got %d", counter.updates)
	}
}

type updateCounter struct {
	BaseComponent
	updates int
}

func (u *updateCounter) Update(deltaTime float32) {
	u.updates++
}

func TestWorldPositionWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position.X = 10

	child := NewGameObject("Child")
	child.Transform.Position.X = 2
	parent.AddChild(child)

	wp := child.WorldPosition()
	if wp.X != 12 {
		t.Errorf("Expected world X 12, got %f", wp.X)
	}
}

func TestForwardDefaultRotation(t *testing.T) {
	obj := NewGameObject("Test")
	f := obj.Forward()
	if f.Z != -1 || f.X != 0 || f.Y != 0 {
		t.Errorf("Default forward should be -Z, got %v", f)
	}
}
