package book

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
)

// UpdateBookUseCase 图书更新用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 图书更新请求DTO
// 部分更新语义:nil字段保留原值,非nil字段覆盖
type UpdateBookRequest struct {
	ID              uint
	Title           *string
	Author          *string
	ISBN            *string
	Genre           *string
	PublicationDate *time.Time
	TotalCopies     *int
	AvailableCopies *int
}

// Execute 执行图书更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*book.Book, error) {
	return uc.bookService.UpdateBook(ctx, req.ID, book.UpdateParams{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		PublicationDate: req.PublicationDate,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	})
}
