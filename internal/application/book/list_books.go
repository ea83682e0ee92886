package book

import (
	"context"

	"github.com/jenishs/library/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 说明:馆藏规模以百千计,列表一次性全量返回(无分页),与前端约定一致
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*book.Book, error) {
	return uc.bookService.ListBooks(ctx)
}
