package issuance

// Status is the lifecycle state of an issuance request. PENDING is the only
// non-terminal state; a request never leaves a terminal state again.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusExpired  Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Event is a lifecycle trigger for an issuance request.
type Event string

const (
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventExpire  Event = "expire"
)

// Transition is a single allowed edge in the request lifecycle.
type Transition struct {
	From  Status
	To    Status
	Event Event
}

var transitionsTable = []Transition{
	{From: StatusPending, To: StatusApproved, Event: EventApprove},
	{From: StatusPending, To: StatusRejected, Event: EventReject},
	{From: StatusPending, To: StatusExpired, Event: EventExpire},
}

// TransitionFor returns the allowed transition for a given state+event.
func TransitionFor(from Status, ev Event) (Transition, bool) {
	for _, tr := range transitionsTable {
		if tr.From == from && tr.Event == ev {
			return tr, true
		}
	}
	return Transition{}, false
}
