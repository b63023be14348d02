package response

import "parking-engine/internal/usecase/commands"

type SweepResponse struct {
	NoShows        int `json:"no_shows"`
	Completed      int `json:"completed"`
	UnpaidFees     int `json:"unpaid_fees"`
	EscalatedFines int `json:"escalated_fines"`
	Failed         int `json:"failed"`
}

func FromSweepReport(r commands.SweepReport) *SweepResponse {
	return &SweepResponse{
		NoShows:        r.NoShows,
		Completed:      r.Completed,
		UnpaidFees:     r.UnpaidFees,
		EscalatedFines: r.EscalatedFines,
		Failed:         r.Failed,
	}
}
