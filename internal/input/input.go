package input

// Key identifies the few keys the clock reacts to.
type Key int

const (
	KeyEscape Key = iota
	// KeyBackground cycles the background palette (B).
	KeyBackground
	// KeyForeground cycles the foreground palette (F).
	KeyForeground

	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyBackground:
		return "background"
	case KeyForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// State reports whether a key is currently held down.
type State interface {
	IsKeyDown(k Key) bool
}

// Edges turns level key state into rising edges. Update samples every key
// once per tick; Pressed is true only for keys that went from up to down
// between the last two samples. Any number of down events between two
// samples collapse into at most one edge.
type Edges struct {
	prev [keyCount]bool
	cur  [keyCount]bool
}

func (e *Edges) Update(s State) {
	e.prev = e.cur
	for k := Key(0); k < keyCount; k++ {
		e.cur[k] = s.IsKeyDown(k)
	}
}

func (e *Edges) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return e.cur[k] && !e.prev[k]
}

// Down is the level state from the most recent Update.
func (e *Edges) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return e.cur[k]
}

// Set is a plain key state, used by surfaces that track keys themselves
// and by tests.
type Set map[Key]bool

func (s Set) IsKeyDown(k Key) bool { return s[k] }
