package book

import (
	"context"
	"time"
)

// CreateParams 创建图书参数
// 副本数使用指针区分"未提供"(走默认值1)与"显式提供0"
type CreateParams struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	PublicationDate *time.Time
	TotalCopies     *int
	AvailableCopies *int
}

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验,Handler层不直接操作Repository
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 新增图书
	// 业务规则:
	// - 书名、作者必填
	// - 副本数缺省为1
	// - 0 <= 可借数 <= 总数
	// - ISBN填写时不能重复(数据库唯一索引兜底)
	AddBook(ctx context.Context, params CreateParams) (*Book, error)

	// ListBooks 返回全部图书(插入顺序)
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook 部分更新图书
	// 未提供的字段保留原值;更新后副本数不变式仍须成立
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则:存在借阅记录的图书禁止删除(restrict策略)
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, params CreateParams) (*Book, error) {
	// 1. 副本数默认值处理
	totalCopies := 1
	if params.TotalCopies != nil {
		totalCopies = *params.TotalCopies
	}
	availableCopies := 1
	if params.AvailableCopies != nil {
		availableCopies = *params.AvailableCopies
	}

	// 2. 创建图书实体(工厂方法内部校验必填项与副本数不变式)
	b, err := NewBook(params.Title, params.Author, params.ISBN, params.Genre,
		params.PublicationDate, totalCopies, availableCopies)
	if err != nil {
		return nil, err
	}

	// 3. 持久化(Repository负责将ISBN唯一索引冲突转换为ErrISBNDuplicate)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ListBooks 返回全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	// 1. 查询图书(不存在返回ErrBookNotFound)
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用部分更新(实体内部校验不变式)
	if err := b.Apply(params); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
