package book

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
)

// AddBookUseCase 新增图书用例
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{bookService: bookService}
}

// AddBookRequest 新增图书请求DTO
// 副本数使用指针:nil表示前端未提供,走默认值1
type AddBookRequest struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	PublicationDate *time.Time
	TotalCopies     *int
	AvailableCopies *int
}

// Execute 执行新增图书用例
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*book.Book, error) {
	return uc.bookService.AddBook(ctx, book.CreateParams{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		PublicationDate: req.PublicationDate,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	})
}
