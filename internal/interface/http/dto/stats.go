package dto

import (
	"github.com/jenishs/library/internal/application/stats"
)

// StatsResponse HTTP统计面板响应
// 四个计数相互独立,不是互斥分区(overdue_books是active_transactions的子集)
type StatsResponse struct {
	TotalBooks         int64 `json:"total_books" example:"42"`
	TotalMembers       int64 `json:"total_members" example:"10"`
	ActiveTransactions int64 `json:"active_transactions" example:"5"`
	OverdueBooks       int64 `json:"overdue_books" example:"2"`
}

// ToStatsResponse 应用层DTO → HTTP响应
func ToStatsResponse(s *stats.Stats) *StatsResponse {
	return &StatsResponse{
		TotalBooks:         s.TotalBooks,
		TotalMembers:       s.TotalMembers,
		ActiveTransactions: s.ActiveTransactions,
		OverdueBooks:       s.OverdueBooks,
	}
}
