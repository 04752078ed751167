package clip

// headlessBackend is a no-op clipboard backend for environments without a
// display server (headless Linux servers, containers, etc.).
// It never produces Watch events and silently discards writes.
type headlessBackend struct {
	watchCh chan Event
}

func newHeadless() *headlessBackend {
	return &headlessBackend{watchCh: make(chan Event)}
}

func (b *headlessBackend) Name() string              { return "headless (no-op)" }
func (b *headlessBackend) ReadText() (string, error) { return "", ErrNoText }
func (b *headlessBackend) WriteText(_ string) error  { return nil }
func (b *headlessBackend) Watch() <-chan Event       { return b.watchCh }
func (b *headlessBackend) Close()                    {}
