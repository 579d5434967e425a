package interfaces

import "context"

// Sequence prefixes, one per numbered entity kind.
const (
	SeqPrefixRequest    = "REQ-"
	SeqPrefixBudget     = "OR-"
	SeqPrefixOrder      = "OS-"
	SeqPrefixEquipment  = "GTA-"
	SeqPrefixClient     = "CL-"
	SeqPrefixTechnician = "TEC-"
	SeqPrefixSecretary  = "SEC-"
	SeqPrefixManager    = "GO-"
)

// ISequenceGenerator allocates monotonically increasing human-readable codes
// per prefix per calendar month (e.g. REQ-202405-00013): the prefix, the
// allocation month and a zero-padded counter.
//
// Allocation happens before the enclosing transaction commits; when that
// transaction aborts the allocated number is burned, never reused.
type ISequenceGenerator interface {
	Allocate(ctx context.Context, prefix string) (string, error)
}
