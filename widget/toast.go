package widget

import (
	"sync"
	"time"
)

// Notifier shows transient messages on a ToastRegion and hides them after a
// fixed delay. Each new message restarts the hide timer, cancelling any
// previously pending hide.
type Notifier struct {
	region   ToastRegion
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewNotifier builds a notifier over region. A nil region yields a notifier
// whose calls are all no-ops.
func NewNotifier(region ToastRegion, duration time.Duration) *Notifier {
	return &Notifier{region: region, duration: duration}
}

// Notify shows message and schedules its hide.
func (n *Notifier) Notify(message string) {
	if n.region == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.region.Show(message)
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.duration, n.region.Hide)
}

// Stop cancels any pending hide.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
