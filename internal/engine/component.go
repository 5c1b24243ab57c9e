package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// TriggerHandler is implemented by components that want trigger-volume
// callbacks. The physics world calls these when another collider starts or
// stops overlapping a collider flagged IsTrigger on this component's object.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// Viewpoint is implemented by components that define where the user is
// looking from. Aim probes fall back to the viewpoint when nothing is found
// near the hand itself.
type Viewpoint interface {
	EyePosition() (x, y, z float32)
	LookDirection() (x, y, z float32)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
