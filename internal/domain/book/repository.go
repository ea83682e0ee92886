package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 按插入顺序返回全部图书
	List(ctx context.Context) ([]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(硬删除)
	// 图书存在借阅记录时返回ErrHasTransactions
	Delete(ctx context.Context, id uint) error

	// Count 图书总数(用于统计面板)
	Count(ctx context.Context) (int64, error)

	// DecrementAvailable 原子扣减可借副本数
	// 使用UPDATE ... WHERE available_copies > 0的带条件更新,
	// 防止并发借阅时读后写导致的超借
	// 图书不存在返回ErrBookNotFound,无可借副本返回ErrNoCopiesAvailable
	DecrementAvailable(ctx context.Context, id uint) error

	// IncrementAvailable 原子回补可借副本数
	// 带WHERE available_copies < total_copies守卫,维持副本数不变式
	IncrementAvailable(ctx context.Context, id uint) error
}
