// Package historical implements HistoricalDataService: a generic,
// append-only persistence sink keyed on a persist key, one file per
// ServiceType, writing plain comma-separated text lines with no framing,
// checksums, or rotation.
package historical

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service stores the most recently persisted value per key and forwards
// every value to its connector for on-disk persistence.
type Service[V schema.Persistable] struct {
	store       *bus.Store[string, V]
	serviceType schema.ServiceType
	connector   *Connector[V]
}

// New creates a historical data service for the given ServiceType.
func New[V schema.Persistable](serviceType schema.ServiceType) *Service[V] {
	return &Service[V]{
		store:       bus.NewStore[string, V](),
		serviceType: serviceType,
	}
}

func (s *Service[V]) setConnector(c *Connector[V]) { s.connector = c }

// ServiceType reports which output file this service persists to.
func (s *Service[V]) ServiceType() schema.ServiceType { return s.serviceType }

// GetData returns the most recently persisted value for a key.
func (s *Service[V]) GetData(key string) (V, bool) {
	return s.store.GetData(key)
}

// OnMessage stores the value under its own key without persisting it;
// persistence only happens via PersistData (driven by a listener keyed on
// whatever the upstream service uses as its own persist key).
func (s *Service[V]) OnMessage(key string, data V) error {
	return s.store.Put(key, data)
}

// PersistData writes data to the backing store under persistKey. It is
// the only path that reaches the connector.
func (s *Service[V]) PersistData(persistKey string, data V) error {
	if err := s.store.Put(persistKey, data); err != nil {
		return err
	}
	if s.connector == nil {
		return nil
	}
	return s.connector.Publish(data)
}
