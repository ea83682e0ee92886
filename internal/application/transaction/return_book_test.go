package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenishs/library/internal/domain/transaction"
)

// TestReturnBook 测试归还用例
func TestReturnBook(t *testing.T) {
	ctx := context.Background()

	// setup 借出一本书,返回借阅记录ID
	setup := func(t *testing.T) (*fakeBookRepo, *fakeTxnRepo, uint) {
		bookRepo := newFakeBookRepo(mustNewBook(1, "1984", 2, 2))
		txnRepo := newFakeTxnRepo()
		issueUC := NewIssueBookUseCase(bookRepo, txnRepo, fakeTxManager{})

		txn, err := issueUC.Execute(ctx, IssueBookRequest{
			BookID:    1,
			MemberID:  1,
			IssueDate: issueDate(2024, 1, 1), // 应还日2024-01-15
		})
		require.NoError(t, err)
		return bookRepo, txnRepo, txn.ID
	}

	t.Run("按期归还", func(t *testing.T) {
		bookRepo, txnRepo, txnID := setup(t)
		uc := NewReturnBookUseCase(bookRepo, txnRepo, fakeTxManager{})

		txn, err := uc.Execute(ctx, ReturnBookRequest{TransactionID: txnID, ReturnDate: issueDate(2024, 1, 10)})

		require.NoError(t, err)
		assert.Equal(t, transaction.StatusReturned, txn.Status)
		require.NotNil(t, txn.ReturnDate)
		assert.Equal(t, 0.0, txn.FineAmount, "按期归还不应该有罚金")

		// 可借副本应该回补
		b, _ := bookRepo.FindByID(ctx, 1)
		assert.Equal(t, 2, b.AvailableCopies)
	})

	t.Run("逾期归还计算罚金", func(t *testing.T) {
		bookRepo, txnRepo, txnID := setup(t)
		uc := NewReturnBookUseCase(bookRepo, txnRepo, fakeTxManager{})

		// 应还日2024-01-15,实际2024-01-18归还,逾期3天
		txn, err := uc.Execute(ctx, ReturnBookRequest{TransactionID: txnID, ReturnDate: issueDate(2024, 1, 18)})

		require.NoError(t, err)
		assert.Equal(t, 3.0, txn.FineAmount, "逾期3天应该产生3元罚金")
	})

	t.Run("借阅记录不存在", func(t *testing.T) {
		bookRepo, txnRepo, _ := setup(t)
		uc := NewReturnBookUseCase(bookRepo, txnRepo, fakeTxManager{})

		_, err := uc.Execute(ctx, ReturnBookRequest{TransactionID: 99, ReturnDate: issueDate(2024, 1, 10)})
		assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	})

	t.Run("重复归还应被拒绝", func(t *testing.T) {
		bookRepo, txnRepo, txnID := setup(t)
		uc := NewReturnBookUseCase(bookRepo, txnRepo, fakeTxManager{})

		_, err := uc.Execute(ctx, ReturnBookRequest{TransactionID: txnID, ReturnDate: issueDate(2024, 1, 10)})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, ReturnBookRequest{TransactionID: txnID, ReturnDate: issueDate(2024, 2, 1)})
		assert.ErrorIs(t, err, transaction.ErrAlreadyReturned)

		// 副本数不应该被重复回补
		b, _ := bookRepo.FindByID(ctx, 1)
		assert.Equal(t, 2, b.AvailableCopies, "重复归还不应该重复回补副本")
	})
}
