package transaction

import (
	"context"

	"github.com/jenishs/library/internal/domain/transaction"
)

// ListTransactionsUseCase 借阅记录列表查询用例
type ListTransactionsUseCase struct {
	txnRepo transaction.Repository
}

// NewListTransactionsUseCase 创建列表查询用例
func NewListTransactionsUseCase(txnRepo transaction.Repository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{txnRepo: txnRepo}
}

// Execute 执行列表查询用例(含联表展示字段)
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) ([]*transaction.Transaction, error) {
	return uc.txnRepo.List(ctx)
}
