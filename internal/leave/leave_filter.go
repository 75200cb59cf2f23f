package leave

import "strings"

const AllStatuses = "all"

// Filter narrows an already fetched leave list by status.
type Filter struct {
	Status string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
}

// Normalized returns f with Status trimmed and lower-cased, the form the
// status validation expects.
func (f Filter) Normalized() Filter {
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	return f
}

func (f Filter) Match(lr LeaveRequest) bool {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	return status == "" || status == AllStatuses || lr.NormalizedStatus() == status
}

func (f Filter) Apply(leaves []LeaveRequest) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(leaves))
	for _, lr := range leaves {
		if f.Match(lr) {
			out = append(out, lr)
		}
	}
	return out
}

type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Summarize counts requests per status, ignoring case. Statuses outside the
// three known ones only count towards Total.
func Summarize(leaves []LeaveRequest) Stats {
	stats := Stats{Total: len(leaves)}
	for _, lr := range leaves {
		switch lr.NormalizedStatus() {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
