// Package physics is the linear-force model behind inertial scrolling:
// forces build up speed, counter pressure bleeds it off each tick, and
// speed translates positions.
package physics

import "scrollkit/geometry"

const (
	defaultAcceleration    = 20.0
	defaultMass            = 1.0
	defaultCounterPressure = 0.1

	// Effective damping divisor bounds. Counter pressure below the
	// lower bound still damps; above the upper bound it saturates.
	minDamping = 1.1
	maxDamping = 10.0

	// Fixed speed-to-distance factor per tick.
	speedToDistance = 0.1
)

// Settings overrides the model defaults. Zero fields keep the default
// (acceleration 20, mass 1, counter pressure 0.1).
type Settings struct {
	Acceleration    float64
	Mass            float64
	CounterPressure float64
}

// Acceleration accumulates speed from applied forces and decays it
// under counter pressure. Speed reaches exactly zero in finitely many
// ticks because each decay step truncates toward zero; without the
// truncation the exponential decay would never end and the owner would
// never return to idle.
type Acceleration struct {
	acceleration    float64
	mass            float64
	counterPressure float64
	speed           geometry.Vector2
}

func New(settings Settings) *Acceleration {
	a := &Acceleration{
		acceleration:    settings.Acceleration,
		mass:            settings.Mass,
		counterPressure: settings.CounterPressure,
	}
	if a.acceleration == 0 {
		a.acceleration = defaultAcceleration
	}
	if a.mass == 0 {
		a.mass = defaultMass
	}
	if a.counterPressure == 0 {
		a.counterPressure = defaultCounterPressure
	}
	return a
}

// ApplyForce accumulates speed: speed += force * acceleration / mass.
func (a *Acceleration) ApplyForce(force geometry.Vector2) {
	a.speed = a.speed.Add(force.Scale(a.acceleration / a.mass))
}

// SetSpeed overrides the speed directly. Used to seed throw velocity
// when a drag releases.
func (a *Acceleration) SetSpeed(v geometry.Vector2) {
	a.speed = v
}

func (a *Acceleration) Speed() geometry.Vector2 {
	return a.speed
}

// ApplyCounterPressure decays the speed one step, truncating toward
// zero so the decay terminates.
func (a *Acceleration) ApplyCounterPressure() {
	damping := clamp(a.counterPressure*a.mass, minDamping, maxDamping)
	a.speed = a.speed.Scale(1 / damping).Trunc()
}

// Stationary reports whether speed is exactly zero on both axes.
func (a *Acceleration) Stationary() bool {
	return a.speed.IsZero()
}

// Translate moves position by the current speed.
func (a *Acceleration) Translate(position geometry.Vector2) geometry.Vector2 {
	return position.Add(a.speed.Scale(speedToDistance))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
