package game

// Sink receives the session's discrete gameplay events. Implementations drive
// particle bursts, audio cues or client notifications; the core itself never
// renders or plays sound. Calls are fire-and-forget and arrive on the goroutine
// driving the session.
type Sink interface {
	Started()
	Paused()
	Resumed()
	Quit()
	AteRegular(at Point, delta int)
	AteSpecial(at Point, delta int)
	Collided(at Point)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Started()              {}
func (NopSink) Paused()               {}
func (NopSink) Resumed()              {}
func (NopSink) Quit()                 {}
func (NopSink) AteRegular(Point, int) {}
func (NopSink) AteSpecial(Point, int) {}
func (NopSink) Collided(Point)        {}

// Event is a recorded gameplay event, used where events are buffered for a
// consumer that polls once per tick (web clients, tests).
type Event struct {
	Kind  string `json:"kind"`
	At    Point  `json:"at"`
	Delta int    `json:"delta,omitempty"`
}

// Event kinds as they appear on the wire.
const (
	EventStarted    = "started"
	EventPaused     = "paused"
	EventResumed    = "resumed"
	EventQuit       = "quit"
	EventAteRegular = "ateRegular"
	EventAteSpecial = "ateSpecial"
	EventCollided   = "collided"
)

// CollectSink buffers events until drained. Not safe for concurrent use; it
// belongs to whichever loop owns the session.
type CollectSink struct {
	events []Event
}

func (c *CollectSink) Started() { c.events = append(c.events, Event{Kind: EventStarted}) }
func (c *CollectSink) Paused()  { c.events = append(c.events, Event{Kind: EventPaused}) }
func (c *CollectSink) Resumed() { c.events = append(c.events, Event{Kind: EventResumed}) }
func (c *CollectSink) Quit()    { c.events = append(c.events, Event{Kind: EventQuit}) }

func (c *CollectSink) AteRegular(at Point, delta int) {
	c.events = append(c.events, Event{Kind: EventAteRegular, At: at, Delta: delta})
}

func (c *CollectSink) AteSpecial(at Point, delta int) {
	c.events = append(c.events, Event{Kind: EventAteSpecial, At: at, Delta: delta})
}

func (c *CollectSink) Collided(at Point) {
	c.events = append(c.events, Event{Kind: EventCollided, At: at})
}

// Drain returns the buffered events and clears the buffer.
func (c *CollectSink) Drain() []Event {
	out := c.events
	c.events = nil
	return out
}

// MultiSink fans each event out to every sink in order.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Started() {
	for _, s := range m {
		s.Started()
	}
}

func (m multiSink) Paused() {
	for _, s := range m {
		s.Paused()
	}
}

func (m multiSink) Resumed() {
	for _, s := range m {
		s.Resumed()
	}
}

func (m multiSink) Quit() {
	for _, s := range m {
		s.Quit()
	}
}

func (m multiSink) AteRegular(at Point, delta int) {
	for _, s := range m {
		s.AteRegular(at, delta)
	}
}

func (m multiSink) AteSpecial(at Point, delta int) {
	for _, s := range m {
		s.AteSpecial(at, delta)
	}
}

func (m multiSink) Collided(at Point) {
	for _, s := range m {
		s.Collided(at)
	}
}
