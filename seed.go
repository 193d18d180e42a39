package terrainver

import "time"

// prng is a minimal Lehmer generator used to draw the default sampler seed.
// It is deliberately self-contained so two generators built in the same
// process tick do not share state with anything else.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	p := &prng{
		a:   16807,
		m:   0x7fffffff,
		div: 1.0 / 0x7fffffff,
	}
	p.randomNum = int(time.Now().UnixNano()) & p.m
	if p.randomNum == 0 {
		p.randomNum = 1
	}
	return p
}

func (p *prng) nextLongRand(seed int) int {
	lo := p.a * (seed & 0xffff)
	hi := p.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > p.m {
		lo &= p.m
		lo++
	}
	lo += hi >> 15
	if lo > p.m {
		lo &= p.m
		lo++
	}
	return lo
}

// randomSeed returns the next pseudo-random value in [0,1).
func (p *prng) randomSeed() float64 {
	p.randomNum = p.nextLongRand(p.randomNum)
	return float64(p.randomNum) * p.div
}
