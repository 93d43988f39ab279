package system

import "math"

// moveX integrates horizontal speed into whole pixels, one pixel at a time.
// The first blocked pixel stops the actor and clears its x speed/remainder.
func (s *PhysicsSystem) moveX(st *step) {
	a := st.actor
	dx := extract(&a.Remainder.X, a.Speed.X*st.ticks)
	if dx == 0 {
		return
	}

	dir := sign(dx)
	for i := 0; i < abs(dx); i++ {
		if st.solid(dir, 0) {
			a.Speed.X = 0
			a.Remainder.X = 0
			return
		}
		a.X += dir
	}
}

// moveY is moveX for the vertical axis. It always runs after moveX.
func (s *PhysicsSystem) moveY(st *step) {
	a := st.actor
	dy := extract(&a.Remainder.Y, a.Speed.Y*st.ticks)
	if dy == 0 {
		return
	}

	dir := sign(dy)
	for i := 0; i < abs(dy); i++ {
		if st.solid(0, dir) {
			a.Speed.Y = 0
			a.Remainder.Y = 0
			return
		}
		a.Y += dir
	}
}

// extract adds delta to the remainder and removes the nearest whole pixel
// count, leaving |rem| <= 0.5.
func extract(rem *float64, delta float64) int {
	*rem += delta
	n := int(math.Floor(*rem + 0.5))
	*rem -= float64(n)
	return n
}
