// Package inquiry implements InquiryService: a keyed store of customer
// RFQs that auto-quotes on arrival and drives the RECEIVED -> QUOTED ->
// DONE transition through its own connector, with explicit terminal-state
// guards on REJECTED and CUSTOMER_REJECTED.
package inquiry

import (
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/errors"
	"treasurydesk/internal/schema"
)

var quotedPrice = decimal.NewFromInt(100)

// Service stores one Inquiry per inquiry ID and fans out every state
// transition.
type Service struct {
	store     *bus.Store[string, schema.Inquiry]
	connector *Connector
}

// New creates an inquiry service. The connector is wired in afterward via
// setConnector since the connector needs the service to exist first.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.Inquiry]()}
}

// setConnector installs the connector OnMessage uses to drive the
// RECEIVED -> QUOTED -> DONE double transition.
func (s *Service) setConnector(c *Connector) {
	s.connector = c
}

// AddListener registers a listener for inquiry state transitions.
func (s *Service) AddListener(l bus.Listener[schema.Inquiry]) {
	s.store.AddListener(l)
}

// GetData returns the current state of an inquiry by ID.
func (s *Service) GetData(inquiryID string) (schema.Inquiry, bool) {
	return s.store.GetData(inquiryID)
}

// OnMessage stores the inquiry and, if it just arrived in RECEIVED
// state, immediately sends a quote of 100.
func (s *Service) OnMessage(inq schema.Inquiry) error {
	if err := s.store.Put(inq.InquiryID, inq); err != nil {
		return err
	}
	if inq.State == schema.InquiryReceived {
		return s.SendQuote(inq.InquiryID, quotedPrice)
	}
	return nil
}

// SendQuote sets the quoted price on the inquiry and publishes it through
// the connector, which drives it to QUOTED then DONE. A terminal inquiry
// is left unchanged and ErrInvalidState is returned.
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) error {
	inq, ok := s.store.GetData(inquiryID)
	if !ok {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: unknown inquiry "+inquiryID)
	}
	if inq.State.Terminal() {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: "+inquiryID+" already terminal")
	}
	inq.Price = price
	if s.connector == nil {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: no connector wired")
	}
	return s.connector.Publish(inq)
}

// RejectInquiry moves an inquiry to REJECTED from any non-terminal state.
func (s *Service) RejectInquiry(inquiryID string) error {
	inq, ok := s.store.GetData(inquiryID)
	if !ok {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: unknown inquiry "+inquiryID)
	}
	if inq.State.Terminal() {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: "+inquiryID+" already terminal")
	}
	inq.State = schema.InquiryRejected
	return s.store.Put(inq.InquiryID, inq)
}

// CustomerReject moves a QUOTED inquiry to CUSTOMER_REJECTED.
func (s *Service) CustomerReject(inquiryID string) error {
	inq, ok := s.store.GetData(inquiryID)
	if !ok {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: unknown inquiry "+inquiryID)
	}
	if inq.State != schema.InquiryQuoted {
		return errors.Wrap(errors.ErrInvalidState, "inquiry: "+inquiryID+" not quoted")
	}
	inq.State = schema.InquiryCustomerRejected
	return s.store.Put(inq.InquiryID, inq)
}
