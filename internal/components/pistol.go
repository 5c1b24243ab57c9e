package components

import (
	"fmt"

	"handlab/internal/engine"
	"handlab/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Pistol",
		func(props map[string]any) engine.Component {
			p := NewPistol()
			if v, ok := props["cooldown"].(float64); ok {
				p.Cooldown = float32(v)
			}
			if v, ok := props["muzzleSpeed"].(float64); ok {
				p.MuzzleSpeed = float32(v)
			}
			return p
		},
		func(c engine.Component) map[string]any {
			p, ok := c.(*Pistol)
			if !ok {
				return nil
			}
			return map[string]any{
				"cooldown":    float64(p.Cooldown),
				"muzzleSpeed": float64(p.MuzzleSpeed),
			}
		})
}

// Pistol is a trigger-held weapon: the trigger actuator both sustains the
// hold and fires. While held it rides the hand like a prop and spawns
// projectiles on a cooldown.
type Pistol struct {
	interact.Holdable

	Cooldown    float32 // seconds between shots
	MuzzleSpeed float32

	sinceShot   float32
	shotCounter int
}

func NewPistol() *Pistol {
	p := &Pistol{Cooldown: 0.15, MuzzleSpeed: 30}
	p.InputMode = interact.ModeTrigger
	return p
}

func (p *Pistol) Start() {
	p.OnGrabbed.AddListener(p.attach)
	p.OnReleased.AddListener(p.detach)
}

func (p *Pistol) Update(deltaTime float32) {
	p.sinceShot += deltaTime
	h := p.HeldBy()
	if h == nil || p.sinceShot < p.Cooldown {
		return
	}
	p.shoot()
	p.sinceShot = 0
}

func (p *Pistol) shoot() {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}

	p.shotCounter++
	dir := g.Forward()
	spawnPos := rl.Vector3Add(g.WorldPosition(), rl.Vector3Scale(dir, 1.5))

	radius := float32(0.2)
	shot := engine.NewGameObject(fmt.Sprintf("Shot_%d", p.shotCounter))
	shot.Transform.Position = spawnPos
	shot.AddComponent(NewShapeRenderer(ShapeSphere, rl.Vector3{}, radius, rl.Orange))
	shot.AddComponent(NewSphereCollider(radius))

	rb := NewRigidbody()
	rb.Bounciness = 0.6
	rb.Friction = 0.1
	rb.Velocity = rl.Vector3Scale(dir, p.MuzzleSpeed)
	shot.AddComponent(rb)

	shot.Start()
	g.Scene.World.SpawnObject(shot)
}

func (p *Pistol) attach(h *interact.Hand) {
	g := p.GetGameObject()
	hand := h.GetGameObject()
	if g == nil || hand == nil {
		return
	}
	hand.AddChild(g)
	g.Transform.Position = rl.Vector3{}
	g.Transform.Rotation = rl.Vector3{}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.SetKinematic(g, true)
	}
}

func (p *Pistol) detach(h *interact.Hand) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	worldPos := g.WorldPosition()
	worldRot := g.WorldRotation()
	if hand := h.GetGameObject(); hand != nil {
		hand.RemoveChild(g)
	}
	g.Transform.Position = worldPos
	g.Transform.Rotation = worldRot
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		rb.Velocity = h.Velocity()
		rb.Wake()
	}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.SetKinematic(g, false)
	}
}
