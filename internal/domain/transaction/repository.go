package transaction

import (
	"context"
	"time"
)

// Repository 借阅记录仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. List/FindByID返回的实体带联表填充的BookTitle/MemberName
//    (显式读取时JOIN,替代ORM反向引用的隐式遍历)
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, txn *Transaction) error

	// FindByID 根据ID查找借阅记录(含联表展示字段)
	FindByID(ctx context.Context, id uint) (*Transaction, error)

	// List 按插入顺序返回全部借阅记录(含联表展示字段)
	List(ctx context.Context) ([]*Transaction, error)

	// Update 更新借阅记录(归还时写入return_date/fine_amount/status)
	Update(ctx context.Context, txn *Transaction) error

	// CountByStatus 按状态统计数量
	CountByStatus(ctx context.Context, status string) (int64, error)

	// CountOverdue 统计逾期数量
	// 口径:status=issued 且 due_date 严格早于asOf(读取时推导,不落库)
	CountOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
