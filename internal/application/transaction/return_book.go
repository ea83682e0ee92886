package transaction

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/transaction"
	"github.com/jenishs/library/pkg/metrics"
)

// ReturnBookUseCase 归还图书用例
type ReturnBookUseCase struct {
	bookRepo  book.Repository
	txnRepo   transaction.Repository
	txManager TxManager
}

// NewReturnBookUseCase 创建归还用例
func NewReturnBookUseCase(
	bookRepo book.Repository,
	txnRepo transaction.Repository,
	txManager TxManager,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		bookRepo:  bookRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
	}
}

// ReturnBookRequest 归还请求DTO
type ReturnBookRequest struct {
	TransactionID uint
	ReturnDate    time.Time // 仅日期(当天零点UTC)
}

// Execute 执行归还用例
// 业务规则:
// - 借阅记录不存在 → 404
// - 已归还的记录拒绝重复归还(否则副本数会被重复回补、罚金被重算覆盖)
// - 逾期罚金 = 逾期天数 × 1.0元,归还时一次性计算后不再变更
// - 状态写入与副本回补在同一事务中
func (uc *ReturnBookUseCase) Execute(ctx context.Context, req ReturnBookRequest) (*transaction.Transaction, error) {
	var returned *transaction.Transaction

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 查询借阅记录
		txn, err := uc.txnRepo.FindByID(txCtx, req.TransactionID)
		if err != nil {
			return err
		}

		// 2. 状态迁移 issued → returned(实体内部计算罚金、拒绝重复归还)
		if err := txn.MarkReturned(req.ReturnDate); err != nil {
			return err
		}

		// 3. 写入归还字段
		if err := uc.txnRepo.Update(txCtx, txn); err != nil {
			return err
		}

		// 4. 原子回补可借副本(守卫available < total,维持不变式)
		if err := uc.bookRepo.IncrementAvailable(txCtx, txn.BookID); err != nil {
			return err
		}

		returned = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksReturnedTotal)
	if returned.FineAmount > 0 {
		metrics.IncCounter(metrics.OverdueReturnsTotal)
		metrics.AddCounter(metrics.FinesAssessedTotal, returned.FineAmount)
	}

	// 5. 重读一次带出联表展示字段
	return uc.txnRepo.FindByID(ctx, returned.ID)
}
