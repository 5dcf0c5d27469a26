package schema

// ServiceType selects the output filename a HistoricalDataService writes to.
type ServiceType int

const (
	ServiceTypeUnknown ServiceType = iota
	ServiceTypePosition
	ServiceTypeRisk
	ServiceTypeExecution
	ServiceTypeStreaming
	ServiceTypeInquiry
)

// Filename returns the fixed output-directory-relative filename for a
// ServiceType, per the reference table of output files.
func (t ServiceType) Filename() string {
	switch t {
	case ServiceTypePosition:
		return "positions.txt"
	case ServiceTypeRisk:
		return "risk.txt"
	case ServiceTypeExecution:
		return "executions.txt"
	case ServiceTypeStreaming:
		return "streaming.txt"
	case ServiceTypeInquiry:
		return "allinquiries.txt"
	default:
		return ""
	}
}

// Persistable is implemented by every value type a HistoricalDataService
// can write: it renders itself as the comma-separated fields of one record,
// excluding the leading timestamp (the writer stamps that).
type Persistable interface {
	PersistFields() []string
}
