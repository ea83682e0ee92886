package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBook 测试图书创建与不变式校验
func TestNewBook(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		pubDate := time.Date(1925, 4, 10, 0, 0, 0, 0, time.UTC)
		b, err := NewBook("The Great Gatsby", "F. Scott Fitzgerald", "978-0-7432-7356-5", "Fiction", &pubDate, 3, 3)

		require.NoError(t, err)
		assert.Equal(t, "The Great Gatsby", b.Title)
		assert.Equal(t, 3, b.TotalCopies)
		assert.Equal(t, 3, b.AvailableCopies)
		assert.False(t, b.CreatedAt.IsZero(), "创建时间应该被填充")
	})

	t.Run("可选字段可以为空", func(t *testing.T) {
		b, err := NewBook("1984", "George Orwell", "", "", nil, 1, 1)

		require.NoError(t, err)
		assert.Empty(t, b.ISBN)
		assert.Nil(t, b.PublicationDate)
	})

	t.Run("书名为空应失败", func(t *testing.T) {
		_, err := NewBook("", "作者", "", "", nil, 1, 1)
		assert.ErrorIs(t, err, ErrMissingRequired)
	})

	t.Run("作者为空应失败", func(t *testing.T) {
		_, err := NewBook("书名", "", "", "", nil, 1, 1)
		assert.ErrorIs(t, err, ErrMissingRequired)
	})

	t.Run("副本数不变式校验", func(t *testing.T) {
		testCases := []struct {
			total      int
			available  int
			shouldFail bool
			desc       string
		}{
			{3, 3, false, "可借等于总数"},
			{3, 0, false, "可借为0(全部借出)"},
			{-1, 0, true, "负的总数"},
			{3, -1, true, "负的可借数"},
			{3, 4, true, "可借超过总数"},
		}

		for _, tc := range testCases {
			_, err := NewBook("书名", "作者", "", "", nil, tc.total, tc.available)
			if tc.shouldFail {
				assert.ErrorIs(t, err, ErrInvalidCopies, tc.desc)
			} else {
				assert.NoError(t, err, tc.desc)
			}
		}
	})
}

// TestBookApply 测试部分更新
func TestBookApply(t *testing.T) {
	newBook := func() *Book {
		b, err := NewBook("旧书名", "旧作者", "111", "Fiction", nil, 3, 2)
		require.NoError(t, err)
		return b
	}

	t.Run("只更新提供的字段", func(t *testing.T) {
		b := newBook()

		title := "新书名"
		total := 5
		err := b.Apply(UpdateParams{Title: &title, TotalCopies: &total})

		require.NoError(t, err)
		assert.Equal(t, "新书名", b.Title)
		assert.Equal(t, 5, b.TotalCopies)
		assert.Equal(t, "旧作者", b.Author, "未提供的字段应该保留原值")
		assert.Equal(t, 2, b.AvailableCopies, "未提供的字段应该保留原值")
	})

	t.Run("ISBN可以清空", func(t *testing.T) {
		b := newBook()

		empty := ""
		err := b.Apply(UpdateParams{ISBN: &empty})
		require.NoError(t, err)
		assert.Empty(t, b.ISBN)
	})

	t.Run("书名不能清空", func(t *testing.T) {
		b := newBook()

		empty := ""
		err := b.Apply(UpdateParams{Title: &empty})
		assert.ErrorIs(t, err, ErrMissingRequired)
	})

	t.Run("更新后不变式仍须成立", func(t *testing.T) {
		b := newBook() // total=3, available=2

		// 把总数降到1,可借的2就超过了总数
		total := 1
		err := b.Apply(UpdateParams{TotalCopies: &total})
		assert.ErrorIs(t, err, ErrInvalidCopies)
	})
}

// TestHasAvailableCopy 测试可借判定
func TestHasAvailableCopy(t *testing.T) {
	b, err := NewBook("书名", "作者", "", "", nil, 1, 1)
	require.NoError(t, err)
	assert.True(t, b.HasAvailableCopy())

	b.AvailableCopies = 0
	assert.False(t, b.HasAvailableCopy())
}
