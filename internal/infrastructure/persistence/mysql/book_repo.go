package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jenishs/library/internal/domain/book"
	apperrors "github.com/jenishs/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与服务端时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// List 按插入顺序(主键序)返回全部图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := dbFromContext(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 更新图书信息
// 用Updates+Select固定列,避免Save把created_at一并覆写
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID

	err := dbFromContext(ctx, r.db).Model(&BookModel{ID: b.ID}).
		Select("title", "author", "isbn", "genre", "publication_date", "total_copies", "available_copies").
		Updates(model).Error
	if err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// Delete 删除图书(硬删除)
// 业务规则:存在借阅记录的图书禁止删除(restrict策略)
// 检查与删除在同一事务DB上执行,由调用方决定是否包事务
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	var refs int64
	if err := db.Model(&TransactionModel{}).Where("book_id = ?", id).Count(&refs).Error; err != nil {
		return apperrors.Wrap(err, "检查借阅记录失败")
	}
	if refs > 0 {
		return book.ErrHasTransactions
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := dbFromContext(ctx, r.db).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计图书总数失败")
	}
	return total, nil
}

// DecrementAvailable 原子扣减可借副本数
// UPDATE books SET available_copies = available_copies - 1
// WHERE id = ? AND available_copies > 0
// 带条件的单条UPDATE由数据库保证原子性,两个并发借阅不会把最后一本借出两次
func (r *bookRepository) DecrementAvailable(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("available_copies > 0").
		Update("available_copies", gorm.Expr("available_copies - 1"))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "扣减可借副本失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或无可借副本,再查一次确定原因
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrNoCopiesAvailable
	}

	return nil
}

// IncrementAvailable 原子回补可借副本数
// WHERE available_copies < total_copies守卫,维持 0 <= available <= total
func (r *bookRepository) IncrementAvailable(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("available_copies < total_copies").
		Update("available_copies", gorm.Expr("available_copies + 1"))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "回补可借副本失败")
	}

	if result.RowsAffected == 0 {
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在但已满额,回补被守卫拦下,维持不变式
		return book.ErrInvalidCopies
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	isbn := ""
	if model.ISBN != nil {
		isbn = *model.ISBN
	}
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		Author:          model.Author,
		ISBN:            isbn,
		Genre:           model.Genre,
		PublicationDate: model.PublicationDate,
		TotalCopies:     model.TotalCopies,
		AvailableCopies: model.AvailableCopies,
		CreatedAt:       model.CreatedAt,
	}
}

// toBookModel 领域实体 → GORM模型
// 空ISBN存NULL,不占用唯一索引
func toBookModel(b *book.Book) *BookModel {
	var isbn *string
	if b.ISBN != "" {
		s := b.ISBN
		isbn = &s
	}
	return &BookModel{
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            isbn,
		Genre:           b.Genre,
		PublicationDate: b.PublicationDate,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}
