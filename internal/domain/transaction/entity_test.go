package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// date 构造仅日期的时间(当天零点UTC),与持久化口径一致
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestNewTransaction 测试借阅记录创建
func TestNewTransaction(t *testing.T) {
	t.Run("应还日期为借出日期加14天", func(t *testing.T) {
		txn := NewTransaction(1, 2, date(2024, 1, 1))

		assert.Equal(t, uint(1), txn.BookID)
		assert.Equal(t, uint(2), txn.MemberID)
		assert.Equal(t, date(2024, 1, 15), txn.DueDate)
		assert.Equal(t, StatusIssued, txn.Status)
		assert.Nil(t, txn.ReturnDate, "未归还时归还日期应该为空")
		assert.Zero(t, txn.FineAmount)
	})

	t.Run("应还日期跨月推算", func(t *testing.T) {
		// 2月20日借出,+14天应该落到3月5日(2024是闰年,2月有29天)
		txn := NewTransaction(1, 1, date(2024, 2, 20))
		assert.Equal(t, date(2024, 3, 5), txn.DueDate)
	})

	t.Run("应还日期跨年推算", func(t *testing.T) {
		txn := NewTransaction(1, 1, date(2023, 12, 25))
		assert.Equal(t, date(2024, 1, 8), txn.DueDate)
	})
}

// TestMarkReturned 测试归还状态迁移与罚金计算
func TestMarkReturned(t *testing.T) {
	t.Run("按期归还无罚金", func(t *testing.T) {
		txn := NewTransaction(1, 1, date(2024, 1, 1))

		// 恰好在应还日当天归还
		err := txn.MarkReturned(date(2024, 1, 15))
		require.NoError(t, err)

		assert.Equal(t, StatusReturned, txn.Status)
		require.NotNil(t, txn.ReturnDate)
		assert.Equal(t, date(2024, 1, 15), *txn.ReturnDate)
		assert.Equal(t, 0.0, txn.FineAmount, "应还日当天归还不应该产生罚金")
	})

	t.Run("提前归还无罚金", func(t *testing.T) {
		txn := NewTransaction(1, 1, date(2024, 1, 1))

		err := txn.MarkReturned(date(2024, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, 0.0, txn.FineAmount)
	})

	t.Run("逾期归还按天计罚金", func(t *testing.T) {
		testCases := []struct {
			returnDate time.Time
			wantFine   float64
			desc       string
		}{
			{date(2024, 1, 16), 1.0, "逾期1天"},
			{date(2024, 1, 18), 3.0, "逾期3天"},
			{date(2024, 2, 14), 30.0, "逾期30天"},
		}

		for _, tc := range testCases {
			txn := NewTransaction(1, 1, date(2024, 1, 1)) // 应还日2024-01-15
			err := txn.MarkReturned(tc.returnDate)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFine, txn.FineAmount, tc.desc)
		}
	})

	t.Run("重复归还应被拒绝", func(t *testing.T) {
		txn := NewTransaction(1, 1, date(2024, 1, 1))

		err := txn.MarkReturned(date(2024, 1, 10))
		require.NoError(t, err)

		// 第二次归还:状态已是returned,应该拒绝且不改动任何字段
		err = txn.MarkReturned(date(2024, 2, 1))
		assert.ErrorIs(t, err, ErrAlreadyReturned)
		assert.Equal(t, date(2024, 1, 10), *txn.ReturnDate, "归还日期不应该被覆盖")
		assert.Equal(t, 0.0, txn.FineAmount, "罚金不应该被重算")
	})
}

// TestIsOverdue 测试逾期判定(读取时推导)
func TestIsOverdue(t *testing.T) {
	txn := NewTransaction(1, 1, date(2024, 1, 1)) // 应还日2024-01-15

	t.Run("应还日之前不逾期", func(t *testing.T) {
		assert.False(t, txn.IsOverdue(date(2024, 1, 10)))
	})

	t.Run("应还日当天不逾期", func(t *testing.T) {
		// 严格早于才算逾期,当天还在宽限内
		assert.False(t, txn.IsOverdue(date(2024, 1, 15)))
	})

	t.Run("应还日之后逾期", func(t *testing.T) {
		assert.True(t, txn.IsOverdue(date(2024, 1, 16)))
	})

	t.Run("已归还的记录不算逾期", func(t *testing.T) {
		returned := NewTransaction(1, 1, date(2024, 1, 1))
		require.NoError(t, returned.MarkReturned(date(2024, 1, 20)))
		assert.False(t, returned.IsOverdue(date(2024, 2, 1)))
	})
}
