package dom

import "golang.org/x/net/html"

// Event types used by the page controllers.
const (
	Click  = "click"
	Change = "change"
)

// Listener handles a dispatched event.
type Listener func(*Event)

// Event is a dispatched UI event. It bubbles from the target up to the
// document element, then reaches the window listeners.
type Event struct {
	Type          string
	Target        Element
	CurrentTarget Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event's default action as canceled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from reaching further ancestors or the window.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// On binds fn to events of the given type on el. Safe to call inside Update.
func (d *Document) On(el Element, eventType string, fn Listener) {
	d.lmu.Lock()
	defer d.lmu.Unlock()
	n := el.Node()
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], fn)
}

// OnWindow binds fn to events of the given type at window level.
func (d *Document) OnWindow(eventType string, fn Listener) {
	d.lmu.Lock()
	defer d.lmu.Unlock()
	d.window[eventType] = append(d.window[eventType], fn)
}

type invocation struct {
	current Element
	fns     []Listener
}

// Dispatch fires an event at target and returns it once every listener ran.
// It must not be called from inside Update.
func (d *Document) Dispatch(target Element, eventType string) *Event {
	ev := &Event{Type: eventType, Target: target}

	var (
		chain     []invocation
		windowFns []Listener
	)
	d.Update(func() {
		d.lmu.Lock()
		defer d.lmu.Unlock()
		for n := target.Node(); n != nil; n = n.Parent {
			if n.Type != html.ElementNode {
				continue
			}
			fns := d.listeners[n][eventType]
			if len(fns) == 0 {
				continue
			}
			chain = append(chain, invocation{
				current: d.elementFor(n),
				fns:     append([]Listener(nil), fns...),
			})
		}
		windowFns = append([]Listener(nil), d.window[eventType]...)
	})

	for _, inv := range chain {
		ev.CurrentTarget = inv.current
		for _, fn := range inv.fns {
			fn(ev)
		}
		if ev.stopped {
			return ev
		}
	}

	ev.CurrentTarget = Element{}
	for _, fn := range windowFns {
		fn(ev)
	}
	return ev
}
