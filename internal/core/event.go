package core

type Event struct {
	Type   string
	Target string
	Value  string
}

type Handler func(Event)

// Guard wraps fn so it only fires while the component is enabled. The guard
// applies even when the element also carries the native disabled attribute.
func Guard(disabled bool, fn Handler) Handler {
	return func(e Event) {
		if disabled || fn == nil {
			return
		}
		fn(e)
	}
}
