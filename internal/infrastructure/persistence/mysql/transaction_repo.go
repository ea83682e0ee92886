package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jenishs/library/internal/domain/transaction"
	apperrors "github.com/jenishs/library/pkg/errors"
)

// transactionRepository 借阅记录仓储实现(MySQL)
// 设计说明:
// 1. 读取统一走显式JOIN,一次查询带出book_title/member_name展示字段
//    (替代ORM反向引用逐条触发的N+1查询)
// 2. 归还的字段写入用Select固定列,issue_date/due_date创建后不再改动
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建借阅记录仓储
func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &transactionRepository{db: db}
}

// transactionRow JOIN查询的扫描目标
// 嵌入TransactionModel,追加两个联表展示列
type transactionRow struct {
	TransactionModel
	BookTitle  string
	MemberName string
}

// joined 构建带JOIN的基础查询
func (r *transactionRepository) joined(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).
		Model(&TransactionModel{}).
		Select("transactions.*, books.title AS book_title, members.name AS member_name").
		Joins("LEFT JOIN books ON books.id = transactions.book_id").
		Joins("LEFT JOIN members ON members.id = transactions.member_id")
}

// Create 创建借阅记录
func (r *transactionRepository) Create(ctx context.Context, txn *transaction.Transaction) error {
	model := &TransactionModel{
		BookID:     txn.BookID,
		MemberID:   txn.MemberID,
		IssueDate:  txn.IssueDate,
		DueDate:    txn.DueDate,
		FineAmount: txn.FineAmount,
		Status:     txn.Status,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	txn.ID = model.ID
	return nil
}

// FindByID 根据ID查找借阅记录(含联表展示字段)
func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	var row transactionRow
	err := r.joined(ctx).Where("transactions.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}
	return toTransactionEntity(&row), nil
}

// List 按插入顺序返回全部借阅记录(含联表展示字段)
func (r *transactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	var rows []transactionRow
	if err := r.joined(ctx).Order("transactions.id ASC").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询借阅记录列表失败")
	}

	txns := make([]*transaction.Transaction, len(rows))
	for i := range rows {
		txns[i] = toTransactionEntity(&rows[i])
	}
	return txns, nil
}

// Update 更新借阅记录
// 只写归还相关的三列,book_id/member_id/issue_date/due_date创建后不可变
func (r *transactionRepository) Update(ctx context.Context, txn *transaction.Transaction) error {
	err := dbFromContext(ctx, r.db).Model(&TransactionModel{ID: txn.ID}).
		Select("return_date", "fine_amount", "status").
		Updates(&TransactionModel{
			ReturnDate: txn.ReturnDate,
			FineAmount: txn.FineAmount,
			Status:     txn.Status,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新借阅记录失败")
	}
	return nil
}

// CountByStatus 按状态统计数量
func (r *transactionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).Model(&TransactionModel{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计借阅记录失败")
	}
	return total, nil
}

// CountOverdue 统计逾期数量
// 口径:status=issued 且 due_date 严格早于asOf
func (r *transactionRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).Model(&TransactionModel{}).
		Where("status = ?", transaction.StatusIssued).
		Where("due_date < ?", asOf).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计逾期记录失败")
	}
	return total, nil
}

// toTransactionEntity JOIN行 → 领域实体
func toTransactionEntity(row *transactionRow) *transaction.Transaction {
	return &transaction.Transaction{
		ID:         row.ID,
		BookID:     row.BookID,
		MemberID:   row.MemberID,
		IssueDate:  row.IssueDate,
		DueDate:    row.DueDate,
		ReturnDate: row.ReturnDate,
		FineAmount: row.FineAmount,
		Status:     row.Status,
		BookTitle:  row.BookTitle,
		MemberName: row.MemberName,
	}
}
