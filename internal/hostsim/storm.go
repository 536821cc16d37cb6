package hostsim

import "github.com/couchcryptid/storm-controller/internal/domain"

// Default wandering storm size.
const (
	DefaultStormRadius       = 1800.0
	DefaultParticlesDistance = DefaultStormRadius + domain.ParticleSpreadMargin
)

// Storm is the host's wandering storm. It implements domain.StormEntity.
type Storm struct {
	Active            bool
	Position          domain.Vec3
	Radius            float64
	ParticlesDistance float64
}

// NewStorm returns an inactive storm of the default size.
func NewStorm() *Storm {
	return &Storm{Radius: DefaultStormRadius, ParticlesDistance: DefaultParticlesDistance}
}

func (s *Storm) SetActive(active bool) { s.Active = active }
func (s *Storm) SetPosition(pos domain.Vec3) { s.Position = pos }
func (s *Storm) SetRadius(radius float64) { s.Radius = radius }
func (s *Storm) SetParticlesDistance(distance float64) { s.ParticlesDistance = distance }

// Camera is the observation point storms are moved to. It implements
// domain.Observer.
type Camera struct {
	Pos domain.Vec3
}

func (c *Camera) Position() domain.Vec3 { return c.Pos }
