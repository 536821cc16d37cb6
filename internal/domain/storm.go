package domain

import (
	"sync"
	"time"
)

// ParticleSpreadMargin is added to a requested storm radius to get the
// distance at which storm particles spawn.
const ParticleSpreadMargin = 2500.0

// Vec3 is a position in host world space.
type Vec3 struct {
	X, Y, Z float64
}

// StormEntity is the host's wandering storm.
type StormEntity interface {
	SetActive(active bool)
	SetPosition(pos Vec3)
	SetRadius(radius float64)
	SetParticlesDistance(distance float64)
}

// Observer supplies the current observation point, normally the main camera.
type Observer interface {
	Position() Vec3
}

// StormRequest is a storm waiting to be applied on the next storm tick.
type StormRequest struct {
	Radius      float64   `json:"radius"` // 0 keeps the host's radius
	RequestedAt time.Time `json:"requested_at"`
}

// StormTrigger holds at most one pending StormRequest. Request and Take are
// safe to call from different goroutines; Take clears the request in the
// same critical section that reads it, so a request is applied exactly once.
type StormTrigger struct {
	mu      sync.Mutex
	pending bool
	req     StormRequest
}

// Request makes a storm pending, replacing any request already pending.
func (t *StormTrigger) Request(radius float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = true
	t.req = StormRequest{Radius: radius, RequestedAt: clock.Now()}
}

// ClearRadius resets the radius of a pending request to the host default.
// The pending flag is left as is.
func (t *StormTrigger) ClearRadius() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.req.Radius = 0
}

// Pending reports whether a request is waiting and returns a copy of it.
func (t *StormTrigger) Pending() (StormRequest, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.req, t.pending
}

// Take returns the pending request and resets the trigger to idle.
func (t *StormTrigger) Take() (StormRequest, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.pending {
		return StormRequest{}, false
	}
	req := t.req
	t.pending = false
	t.req = StormRequest{}
	return req, true
}

// Apply consumes the pending request, if any, and applies it to entity:
// the storm is activated and moved to the observer, and a positive radius
// also sets the storm radius and particle spread distance.
func (t *StormTrigger) Apply(entity StormEntity, observer Observer) (StormRequest, bool) {
	req, ok := t.Take()
	if !ok {
		return StormRequest{}, false
	}

	entity.SetActive(true)
	entity.SetPosition(observer.Position())
	if req.Radius > 0 {
		entity.SetRadius(req.Radius)
		entity.SetParticlesDistance(req.Radius + ParticleSpreadMargin)
	}
	return req, true
}
