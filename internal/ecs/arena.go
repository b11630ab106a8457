package ecs

// Handle is a stable reference to an arena slot. A handle whose
// generation no longer matches its slot refers to a removed value.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Nil is the zero handle. Generations start at 1, so it never resolves.
var Nil Handle

type slotState uint8

const (
	slotFree slotState = iota
	slotPending
	slotLive
)

type slot[T any] struct {
	val   T
	gen   uint32
	state slotState
	dead  bool
}

// Arena stores values in reusable slots with deferred removal.
//
// Kill only marks a slot; Sweep removes every marked slot once. Values
// inserted while Each is running stay pending until the next Sweep, so a
// pass never sees the live set change under it.
type Arena[T any] struct {
	slots     []slot[T]
	free      []uint32
	live      int
	iterating bool
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	s.val = v
	s.dead = false
	if a.iterating {
		s.state = slotPending
	} else {
		s.state = slotLive
		a.live++
	}

	return Handle{Index: idx, Gen: s.gen}
}

func (a *Arena[T]) resolve(h Handle) *slot[T] {
	if int(h.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.Index]
	if s.state == slotFree || s.gen != h.Gen {
		return nil
	}
	return s
}

// Get returns the value for h, including pending and killed values that
// have not been swept yet.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	s := a.resolve(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.val, true
}

// Alive reports whether h resolves and is not marked for removal.
func (a *Arena[T]) Alive(h Handle) bool {
	s := a.resolve(h)
	return s != nil && !s.dead
}

// Kill marks h for removal at the next Sweep. Killing twice, or killing
// a stale handle, is a no-op. It reports whether the mark was new.
func (a *Arena[T]) Kill(h Handle) bool {
	s := a.resolve(h)
	if s == nil || s.dead {
		return false
	}
	s.dead = true
	return true
}

// Each calls fn for every live value in slot order until fn returns
// false. Killed values are still visited until they are swept.
func (a *Arena[T]) Each(fn func(h Handle, v T) bool) {
	prev := a.iterating
	a.iterating = true
	defer func() { a.iterating = prev }()

	for i := range a.slots {
		s := &a.slots[i]
		if s.state != slotLive {
			continue
		}
		if !fn(Handle{Index: uint32(i), Gen: s.gen}, s.val) {
			return
		}
	}
}

// Sweep frees every killed slot, promotes pending values to live and
// calls removed (when non-nil) once per freed value. It returns the
// number of values removed.
func (a *Arena[T]) Sweep(removed func(v T)) int {
	n := 0
	for i := range a.slots {
		s := &a.slots[i]
		switch {
		case s.state != slotFree && s.dead:
			if s.state == slotLive {
				a.live--
			}
			v := s.val
			var zero T
			s.val = zero
			s.state = slotFree
			s.dead = false
			a.free = append(a.free, uint32(i))
			n++
			if removed != nil {
				removed(v)
			}
		case s.state == slotPending:
			s.state = slotLive
			a.live++
		}
	}
	return n
}

// Len returns the number of live values, killed-but-unswept included.
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear drops every value without invoking callbacks. Outstanding
// handles become stale.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state != slotFree {
			var zero T
			s.val = zero
			s.state = slotFree
			s.dead = false
			a.free = append(a.free, uint32(i))
		}
	}
	a.live = 0
}
