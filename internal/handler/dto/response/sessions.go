package response

import (
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"
)

type ExitResponse struct {
	Session *queries.SessionView `json:"session"`
	// Violation is the overstay fine raised by this exit, if any.
	Violation            *queries.ViolationView `json:"violation,omitempty"`
	ReservationCompleted bool                   `json:"reservation_completed"`
}

func FromExitResult(r *commands.ExitResult) *ExitResponse {
	res := &ExitResponse{
		Session:              queries.NewSessionView(r.Session),
		ReservationCompleted: r.Completed,
	}
	if r.Violation != nil {
		res.Violation = queries.NewViolationView(r.Violation)
	}
	return res
}

// ActiveSessionResponse reports an unparked vehicle as parked=false rather than an error.
type ActiveSessionResponse struct {
	Parked  bool                 `json:"parked"`
	Session *queries.SessionView `json:"session,omitempty"`
}

func FromActiveSession(v *queries.SessionView) *ActiveSessionResponse {
	return &ActiveSessionResponse{Parked: v != nil, Session: v}
}
