package quadratic

// probe walks the quadratic probe sequence (hashkey + i*i) % capacity
// for i = 0, 1, 2, ... and runs out after capacity steps.
type probe struct {
	start    uint64
	capacity uint64
	i        uint64
}

func newProbe(hashkey uint64, capacity uint) probe {
	c := uint64(capacity)
	return probe{
		start:    hashkey % c,
		capacity: c,
	}
}

// index returns the bucket for the current step. The reductions keep
// large hashes from overflowing.
func (p *probe) index() int {
	j := p.i % p.capacity
	return int((p.start + (j*j)%p.capacity) % p.capacity)
}

func (p *probe) next() {
	p.i++
}

func (p *probe) done() bool {
	return p.i >= p.capacity
}
