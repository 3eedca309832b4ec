package intercept

// slot is one installed wrapper. Its position in memberRecord.slots is its
// identity for removal, so slots are tombstoned rather than removed.
type slot struct {
	fn     any
	active bool
}

// memberRecord tracks the wrappers of a single member.
type memberRecord struct {
	// original is the member's value before the first wrapper was installed.
	original any
	slots    []slot
}

// install appends fn and returns its 1-based position.
func (r *memberRecord) install(fn any) int {
	r.slots = append(r.slots, slot{fn: fn, active: true})
	return len(r.slots)
}

// remove tombstones the slot at pos. It returns false if pos is out of range
// or the slot was already removed.
func (r *memberRecord) remove(pos int) bool {
	if pos < 1 || pos > len(r.slots) {
		return false
	}
	s := &r.slots[pos-1]
	if !s.active {
		return false
	}
	s.fn = nil
	s.active = false
	return true
}

// top returns the newest active wrapper among the first n slots, or the
// original if there isn't one.
func (r *memberRecord) top(n int) any {
	n = min(n, len(r.slots))
	for i := n - 1; i >= 0; i-- {
		if r.slots[i].active {
			return r.slots[i].fn
		}
	}
	return r.original
}

// newest returns the position of the newest active slot, or 0 if there are
// none.
func (r *memberRecord) newest() int {
	for i := len(r.slots) - 1; i >= 0; i-- {
		if r.slots[i].active {
			return i + 1
		}
	}
	return 0
}

// depth returns the number of active slots.
func (r *memberRecord) depth() int {
	var n int
	for _, s := range r.slots {
		if s.active {
			n++
		}
	}
	return n
}

// registry holds the wrapped members of one target.
type registry map[string]*memberRecord

// sideTable maps targets to their registries. It holds a target only while
// at least one of its members is wrapped.
type sideTable map[Target]registry

func (st sideTable) lookup(t Target, name string) *memberRecord {
	return st[t][name]
}

// lookupOrCreate returns the record for the member, creating it with the
// given original if necessary.
func (st sideTable) lookupOrCreate(t Target, name string, original any) *memberRecord {
	reg, ok := st[t]
	if !ok {
		reg = registry{}
		st[t] = reg
	}
	rec, ok := reg[name]
	if !ok {
		rec = &memberRecord{original: original}
		reg[name] = rec
	}
	return rec
}

// drop forgets the member and, if it was the last one, the target.
func (st sideTable) drop(t Target, name string) {
	reg, ok := st[t]
	if !ok {
		return
	}
	delete(reg, name)
	if len(reg) == 0 {
		delete(st, t)
	}
}
