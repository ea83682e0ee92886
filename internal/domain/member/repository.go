package member

import (
	"context"
)

// Repository 会员仓储接口
// 由domain层定义,infrastructure层实现(依赖倒置)
type Repository interface {
	// Create 创建会员
	Create(ctx context.Context, member *Member) error

	// FindByID 根据ID查找会员
	FindByID(ctx context.Context, id uint) (*Member, error)

	// List 按插入顺序返回全部会员
	List(ctx context.Context) ([]*Member, error)

	// Update 更新会员信息
	Update(ctx context.Context, member *Member) error

	// Delete 删除会员(硬删除)
	// 会员存在借阅记录时返回ErrHasTransactions
	Delete(ctx context.Context, id uint) error

	// Count 会员总数(用于统计面板)
	Count(ctx context.Context) (int64, error)
}
