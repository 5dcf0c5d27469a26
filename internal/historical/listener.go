package historical

import "treasurydesk/internal/schema"

// AsListener adapts a Service into a bus.Listener[V] keyed by keyFn, so it
// can be registered directly on the upstream service it persists data
// from.
func AsListener[V schema.Persistable](service *Service[V], keyFn func(V) string) *listenerAdapter[V] {
	return &listenerAdapter[V]{service: service, keyFn: keyFn}
}

type listenerAdapter[V schema.Persistable] struct {
	service *Service[V]
	keyFn   func(V) string
}

func (l *listenerAdapter[V]) ProcessAdd(data V) error {
	return l.service.PersistData(l.keyFn(data), data)
}

func (l *listenerAdapter[V]) ProcessRemove(V) error { return nil }
func (l *listenerAdapter[V]) ProcessUpdate(V) error { return nil }
