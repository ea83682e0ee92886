package transaction

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/transaction"
	"github.com/jenishs/library/pkg/metrics"
)

// IssueBookUseCase 借出图书用例
// 这是整个服务最核心的用例:涉及事务处理与并发控制
type IssueBookUseCase struct {
	bookRepo  book.Repository
	txnRepo   transaction.Repository
	txManager TxManager
}

// NewIssueBookUseCase 创建借出用例
func NewIssueBookUseCase(
	bookRepo book.Repository,
	txnRepo transaction.Repository,
	txManager TxManager,
) *IssueBookUseCase {
	return &IssueBookUseCase{
		bookRepo:  bookRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
	}
}

// IssueBookRequest 借出请求DTO
type IssueBookRequest struct {
	BookID    uint
	MemberID  uint
	IssueDate time.Time // 仅日期(当天零点UTC)
}

// Execute 执行借出用例
//
// 核心问题:副本超借
// 场景:最后1个可借副本,两个并发借出请求都先读到"有副本"再各自扣减,
// 结果同一副本被借出两次
//
// 解法:不做读后写,扣减用单条带条件UPDATE
// UPDATE books SET available_copies = available_copies - 1
// WHERE id = ? AND available_copies > 0
// 影响行数为0即拒绝,扣减与借阅记录写入包在同一事务中,
// 任一步失败整体回滚,不会出现"扣了副本却没有记录"的半截状态
func (uc *IssueBookUseCase) Execute(ctx context.Context, req IssueBookRequest) (*transaction.Transaction, error) {
	var created *transaction.Transaction

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 原子扣减可借副本
		// 图书不存在 → ErrBookNotFound(404)
		// 无可借副本 → ErrNoCopiesAvailable(400),且未发生任何变更
		if err := uc.bookRepo.DecrementAvailable(txCtx, req.BookID); err != nil {
			return err
		}

		// 2. 创建借阅记录(应还日期 = 借出日期 + 14天,创建时固定)
		txn := transaction.NewTransaction(req.BookID, req.MemberID, req.IssueDate)
		if err := uc.txnRepo.Create(txCtx, txn); err != nil {
			return err
		}

		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksIssuedTotal)

	// 3. 事务提交后重读一次,带出book_title/member_name展示字段
	return uc.txnRepo.FindByID(ctx, created.ID)
}
