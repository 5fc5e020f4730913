// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledgertree/backend/internal/domain/entity"
)

// SummaryPeriodResponse represents the resolved date window of a summary.
type SummaryPeriodResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SummaryResponse represents the response for the summary endpoint.
// Balance is income minus expense.
type SummaryResponse struct {
	Income  string                `json:"income"`
	Expense string                `json:"expense"`
	Balance string                `json:"balance"`
	Period  SummaryPeriodResponse `json:"period"`
}

// ToSummaryResponse converts a Summary entity and its resolved window to
// a SummaryResponse DTO.
func ToSummaryResponse(summary entity.Summary, from, to string) SummaryResponse {
	balance := summary.Income.Sub(summary.Expense)
	return SummaryResponse{
		Income:  summary.Income.String(),
		Expense: summary.Expense.String(),
		Balance: balance.String(),
		Period: SummaryPeriodResponse{
			From: from,
			To:   to,
		},
	}
}
