package stats

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/member"
	"github.com/jenishs/library/internal/domain/transaction"
)

// GetStatsUseCase 统计面板用例
// 设计说明:
// 1. 四个计数全部从当前库表状态实时推导,不维护任何持久化聚合
// 2. "逾期"是派生口径(status=issued且due_date<今天),不是持久化状态
// 3. 四个计数相互独立,不构成互斥分区(逾期是活跃的子集)
type GetStatsUseCase struct {
	bookRepo   book.Repository
	memberRepo member.Repository
	txnRepo    transaction.Repository

	// now可注入,测试时固定评估时点
	now func() time.Time
}

// NewGetStatsUseCase 创建统计用例
func NewGetStatsUseCase(
	bookRepo book.Repository,
	memberRepo member.Repository,
	txnRepo transaction.Repository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
		now:        time.Now,
	}
}

// Stats 统计结果DTO
type Stats struct {
	TotalBooks         int64 // 图书总数
	TotalMembers       int64 // 会员总数
	ActiveTransactions int64 // 在借记录数(status=issued)
	OverdueBooks       int64 // 逾期记录数(status=issued且应还日期早于今天)
}

// Execute 执行统计用例
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*Stats, error) {
	totalBooks, err := uc.bookRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalMembers, err := uc.memberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := uc.txnRepo.CountByStatus(ctx, transaction.StatusIssued)
	if err != nil {
		return nil, err
	}

	// 评估时点取UTC当天零点,due_date存的也是当天零点,
	// 因此"due_date < today"即"应还日期严格早于今天"
	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	overdue, err := uc.txnRepo.CountOverdue(ctx, today)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalBooks:         totalBooks,
		TotalMembers:       totalMembers,
		ActiveTransactions: active,
		OverdueBooks:       overdue,
	}, nil
}
