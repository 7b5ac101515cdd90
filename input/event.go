package input

// Kind identifies an input event.
type Kind int

const (
	None Kind = iota
	Move
	Scroll
	Spawn
	Resize
	Focus
	Blur
	Quit
)

var kindNames = [...]string{"none", "move", "scroll", "spawn", "resize", "focus", "blur", "quit"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is a host agnostic input event.
//
// Move carries the pointer position in {X, Y}. Scroll carries the scroll
// Offset. Spawn carries an explicit position only when At is set.
// Resize carries the new viewport size in {W, H}.
type Event struct {
	Kind   Kind
	X, Y   float64
	At     bool
	Offset float64
	W, H   int
}

// Spawner is implemented by the particle system.
type Spawner interface {
	Spawn()
	SpawnAt(x, y float64)
}

// Router turns pointer, scroll and spawn events into gated spawn requests.
type Router struct {
	Pointer *Gate
	Scroll  *Gate

	spawner Spawner
	size    func() (int, int)
}

// NewRouter creates a router. size reports the current viewport dimensions.
func NewRouter(s Spawner, size func() (int, int), pointer, scroll *Gate) *Router {
	return &Router{
		Pointer: pointer,
		Scroll:  scroll,
		spawner: s,
		size:    size,
	}
}

// Route handles the spawn related events and reports whether ev was one of them.
func (r *Router) Route(ev Event) bool {
	switch ev.Kind {
	case Move:
		if r.Pointer.Allow() {
			r.spawner.SpawnAt(ev.X, ev.Y)
		}
	case Scroll:
		if r.Scroll.Allow() {
			w, h := r.size()
			r.spawner.SpawnAt(r.Scroll.ScrollPoint(w, h, ev.Offset))
		}
	case Spawn:
		if ev.At {
			r.spawner.SpawnAt(ev.X, ev.Y)
		} else {
			r.spawner.Spawn()
		}
	default:
		return false
	}
	return true
}
