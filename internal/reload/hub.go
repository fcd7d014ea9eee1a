package reload

import "sync"

// Path is where the dev server streams reload events.
const Path = "/__elysium/reload"

const Script = `(function(){if(window.__elysium_reload)return;window.__elysium_reload=true;` +
	`var es=new EventSource("` + Path + `");` +
	`es.addEventListener("reload",function(){window.location.reload();});` +
	`es.onerror=function(){es.close();setTimeout(function(){window.location.reload();},1000);};})();`

// Hub fans a reload signal out to every connected browser.
type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *Hub) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Notify never blocks; a subscriber with a pending signal is skipped.
func (h *Hub) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
