package components

import (
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody",
		func(props map[string]any) engine.Component {
			r := NewRigidbody()
			if m, ok := props["mass"].(float64); ok {
				r.Mass = float32(m)
			}
			if b, ok := props["bounciness"].(float64); ok {
				r.Bounciness = float32(b)
			}
			if f, ok := props["friction"].(float64); ok {
				r.Friction = float32(f)
			}
			if g, ok := props["useGravity"].(bool); ok {
				r.UseGravity = g
			}
			if k, ok := props["isKinematic"].(bool); ok {
				r.IsKinematic = k
			}
			return r
		},
		func(c engine.Component) map[string]any {
			r, ok := c.(*Rigidbody)
			if !ok {
				return nil
			}
			return map[string]any{
				"mass":        float64(r.Mass),
				"bounciness":  float64(r.Bounciness),
				"friction":    float64(r.Friction),
				"useGravity":  r.UseGravity,
				"isKinematic": r.IsKinematic,
			}
		})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity   rl.Vector3
	Mass       float32
	Bounciness float32 // 0 = no bounce, 1 = perfect bounce
	Friction   float32 // 0 = ice, 1 = stops immediately
	UseGravity bool
	IsKinematic bool // moves but doesn't get pushed by physics

	// Sleep state - sleeping objects skip integration
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:   rl.Vector3{},
		Mass:       1.0,
		Bounciness: 0.5,
		Friction:   0.1,
		UseGravity: true,
		CanSleep:   true,
	}
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	if speed < SleepVelocityThreshold {
		r.sleepTimer += deltaTime

		// Extra damping when nearly at rest to reduce jitter
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)

		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
