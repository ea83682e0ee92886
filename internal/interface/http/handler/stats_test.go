package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatsAPI 测试统计面板接口
func TestStatsAPI(t *testing.T) {
	t.Run("空库表四个计数均为0", func(t *testing.T) {
		f := newTestFixture()

		w := f.doJSON(t, "GET", "/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.JSONEq(t, `{
			"total_books": 0,
			"total_members": 0,
			"active_transactions": 0,
			"overdue_books": 0
		}`, w.Body.String())
	})

	t.Run("响应字段名与前端约定一致", func(t *testing.T) {
		// 前端面板按这四个键取数,字段名变更会静默显示为空
		f := newTestFixture()
		setupLibrary(t, f, 3)

		// 借出日期在过去,应还日早已过去 → 既在借又逾期
		issued := f.doJSON(t, "POST", "/transactions/issue", map[string]interface{}{
			"book_id": 1, "member_id": 1, "issue_date": "2024-01-01",
		})
		require.Equal(t, http.StatusCreated, issued.Code)

		w := f.doJSON(t, "GET", "/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]json.Number
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), "响应体: %s", w.Body.String())

		for _, key := range []string{"total_books", "total_members", "active_transactions", "overdue_books"} {
			assert.Contains(t, raw, key)
		}
		assert.Len(t, raw, 4, "不应该有约定之外的字段")

		assert.Equal(t, "1", raw["total_books"].String())
		assert.Equal(t, "1", raw["total_members"].String())
		assert.Equal(t, "1", raw["active_transactions"].String())
		assert.Equal(t, "1", raw["overdue_books"].String(), "2024年借出的记录早已逾期")
	})

	t.Run("归还后在借与逾期计数回落", func(t *testing.T) {
		f := newTestFixture()
		setupLibrary(t, f, 1)

		f.doJSON(t, "POST", "/transactions/issue", map[string]interface{}{
			"book_id": 1, "member_id": 1, "issue_date": "2024-01-01",
		})
		returned := f.doJSON(t, "PUT", "/transactions/1/return", map[string]interface{}{
			"return_date": "2024-02-01",
		})
		require.Equal(t, http.StatusOK, returned.Code)

		w := f.doJSON(t, "GET", "/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.JSONEq(t, `{
			"total_books": 1,
			"total_members": 1,
			"active_transactions": 0,
			"overdue_books": 0
		}`, w.Body.String())
	})
}
