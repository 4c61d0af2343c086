package loop

import (
	"github.com/tomz197/pong/internal/physics"
)

// Puck is the ball as collision resolution sees it.
type Puck interface {
	Position() (x, y int)
	Radius() float64
	ReflectX()
}

// Collider is anything with a rectangular hit box.
type Collider interface {
	Bounds() physics.Rect
}

// CollisionResolver reflects the ball off paddles. It never separates
// overlapping shapes, so without a cooldown a ball lodged in a paddle
// reverses every tick until it works its way out.
type CollisionResolver struct {
	cooldown int
	cooling  map[Collider]int
}

// NewCollisionResolver creates a resolver that ignores a paddle for
// cooldownTicks calls after it was hit. 0 disables the cooldown.
func NewCollisionResolver(cooldownTicks int) *CollisionResolver {
	return &CollisionResolver{
		cooldown: cooldownTicks,
		cooling:  make(map[Collider]int),
	}
}

// Check reports whether the ball touches or overlaps the collider.
// A center outside the box grown by the radius cannot touch it.
func (c *CollisionResolver) Check(ball Puck, p Collider) bool {
	bx, by := ball.Position()
	x, y := float64(bx), float64(by)
	bounds, r := p.Bounds(), ball.Radius()
	if !bounds.Expand(r).Contains(x, y) {
		return false
	}
	return physics.CircleRectOverlap(x, y, r, bounds)
}

// Resolve tests every collider and reflects the ball once per hit.
// Returns the number of hits.
func (c *CollisionResolver) Resolve(ball Puck, colliders ...Collider) int {
	hits := 0
	for _, p := range colliders {
		if left := c.cooling[p]; left > 0 {
			if left == 1 {
				delete(c.cooling, p)
			} else {
				c.cooling[p] = left - 1
			}
			continue
		}
		if !c.Check(ball, p) {
			continue
		}
		ball.ReflectX()
		hits++
		if c.cooldown > 0 {
			c.cooling[p] = c.cooldown
		}
	}
	return hits
}
