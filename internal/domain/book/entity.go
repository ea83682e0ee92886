package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含馆藏图书的核心属性
// 2. TotalCopies/AvailableCopies是馆藏副本计数,借出扣减、归还回补
// 3. ISBN作为业务唯一标识(可选,填写时数据库层保证唯一性)
// 4. 不变式: 0 <= AvailableCopies <= TotalCopies,任何变更后必须成立
type Book struct {
	ID              uint
	Title           string     // 书名
	Author          string     // 作者
	ISBN            string     // ISBN号(可选)
	Genre           string     // 类别(可选)
	PublicationDate *time.Time // 出版日期(可选,仅日期)
	TotalCopies     int        // 馆藏副本总数
	AvailableCopies int        // 当前可借副本数
	CreatedAt       time.Time  // 创建时间,创建后不再修改
}

// NewBook 创建新图书(工厂方法)
// 副本数缺省为1(与前端"新增图书"表单的默认值一致)
func NewBook(title, author, isbn, genre string, publicationDate *time.Time, totalCopies, availableCopies int) (*Book, error) {
	b := &Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Genre:           genre,
		PublicationDate: publicationDate,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		CreatedAt:       time.Now().UTC(),
	}

	if b.Title == "" || b.Author == "" {
		return nil, ErrMissingRequired
	}
	if err := b.validateCopies(); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateParams 部分更新参数
// 指针字段区分"未提供"(nil,保留原值)与"提供了零值"(覆盖)
type UpdateParams struct {
	Title           *string
	Author          *string
	ISBN            *string
	Genre           *string
	PublicationDate *time.Time
	TotalCopies     *int
	AvailableCopies *int
}

// Apply 应用部分更新(领域行为)
// 业务规则:更新后副本数不变式仍须成立;必填字段不能清空
func (b *Book) Apply(p UpdateParams) error {
	if p.Title != nil {
		if *p.Title == "" {
			return ErrMissingRequired
		}
		b.Title = *p.Title
	}
	if p.Author != nil {
		if *p.Author == "" {
			return ErrMissingRequired
		}
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.PublicationDate != nil {
		d := *p.PublicationDate
		b.PublicationDate = &d
	}
	if p.TotalCopies != nil {
		b.TotalCopies = *p.TotalCopies
	}
	if p.AvailableCopies != nil {
		b.AvailableCopies = *p.AvailableCopies
	}
	return b.validateCopies()
}

// HasAvailableCopy 是否有可借副本
func (b *Book) HasAvailableCopy() bool {
	return b.AvailableCopies > 0
}

// validateCopies 校验副本数不变式
func (b *Book) validateCopies() error {
	if b.TotalCopies < 0 || b.AvailableCopies < 0 {
		return ErrInvalidCopies
	}
	if b.AvailableCopies > b.TotalCopies {
		return ErrInvalidCopies
	}
	return nil
}
