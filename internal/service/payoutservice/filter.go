package payoutservice

import (
	"strings"

	"github.com/GlebRadaev/authordash/internal/domain"
)

const FilterAll = "all"

// Filter keeps the payouts whose status equals status, ignoring case. "all"
// or an empty status keeps everything. The input is never modified and the
// result is always a fresh slice in input order.
func Filter(payouts []domain.Payout, status string) []domain.Payout {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, FilterAll) {
		out := make([]domain.Payout, len(payouts))
		copy(out, payouts)
		return out
	}

	out := make([]domain.Payout, 0, len(payouts))
	for _, p := range payouts {
		if p.Status.Is(status) {
			out = append(out, p)
		}
	}
	return out
}
