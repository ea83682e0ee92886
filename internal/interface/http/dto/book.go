package dto

import (
	"github.com/jenishs/library/internal/domain/book"
)

// CreateBookRequest HTTP新增图书请求
// validator tag说明:
// - required: 必填字段
// - datetime: 日期格式校验(YYYY-MM-DD)
// - 副本数用指针区分"未提供"(默认1)与"显式提供0"
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=200" example:"The Great Gatsby"`
	Author          string `json:"author" binding:"required,max=100" example:"F. Scott Fitzgerald"`
	ISBN            string `json:"isbn" binding:"omitempty,max=20" example:"978-0-7432-7356-5"`
	Genre           string `json:"genre" binding:"omitempty,max=50" example:"Fiction"`
	PublicationDate string `json:"publication_date" binding:"omitempty,datetime=2006-01-02" example:"1925-04-10"`
	TotalCopies     *int   `json:"total_copies" binding:"omitempty,min=0" example:"3"`
	AvailableCopies *int   `json:"available_copies" binding:"omitempty,min=0" example:"3"`
}

// UpdateBookRequest HTTP图书更新请求
// 部分更新语义:全部字段可选,未出现在请求体中的字段保留原值
type UpdateBookRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=200"`
	Author          *string `json:"author" binding:"omitempty,max=100"`
	ISBN            *string `json:"isbn" binding:"omitempty,max=20"`
	Genre           *string `json:"genre" binding:"omitempty,max=50"`
	PublicationDate *string `json:"publication_date" binding:"omitempty,datetime=2006-01-02"`
	TotalCopies     *int    `json:"total_copies" binding:"omitempty,min=0"`
	AvailableCopies *int    `json:"available_copies" binding:"omitempty,min=0"`
}

// BookResponse HTTP图书响应
// 可选字段(isbn/genre/publication_date)缺失时输出null,与参考前端约定一致
type BookResponse struct {
	ID              uint    `json:"id" example:"1"`
	Title           string  `json:"title" example:"The Great Gatsby"`
	Author          string  `json:"author" example:"F. Scott Fitzgerald"`
	ISBN            *string `json:"isbn" example:"978-0-7432-7356-5"`
	Genre           *string `json:"genre" example:"Fiction"`
	PublicationDate *string `json:"publication_date" example:"1925-04-10"`
	TotalCopies     int     `json:"total_copies" example:"3"`
	AvailableCopies int     `json:"available_copies" example:"3"`
	CreatedAt       string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationDate: FormatDatePtr(b.PublicationDate),
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if b.ISBN != "" {
		resp.ISBN = &b.ISBN
	}
	if b.Genre != "" {
		resp.Genre = &b.Genre
	}
	return resp
}

// ToBookListResponse 实体切片 → 响应数组
// 空列表输出[]而不是null
func ToBookListResponse(books []*book.Book) []*BookResponse {
	list := make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = ToBookResponse(b)
	}
	return list
}
