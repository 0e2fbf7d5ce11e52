package seeded

// Adler-32 accumulation from an arbitrary initial state. The standard
// library entry points fix the initial state at 1, so seeding requires
// running the recurrence directly: two mod-65521 sums over the input,
// packed high/low into 32 bits.

const (
	adlerMod = 65521
	// adlerNMax is the largest n such that 255*n*(n+1)/2 + (n+1)*(adlerMod-1)
	// fits in 32 bits, allowing the mod to be deferred across a block.
	adlerNMax = 5552
)

func adlerUpdate(state uint32, p []byte) uint32 {
	s1, s2 := state&0xffff, state>>16
	for len(p) > 0 {
		block := p
		if len(block) > adlerNMax {
			block = block[:adlerNMax]
		}
		p = p[len(block):]
		for _, b := range block {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= adlerMod
		s2 %= adlerMod
	}
	return s2<<16 | s1
}
