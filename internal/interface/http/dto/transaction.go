package dto

import (
	"github.com/jenishs/library/internal/domain/transaction"
)

// IssueBookRequest HTTP借出请求
type IssueBookRequest struct {
	BookID    uint   `json:"book_id" binding:"required" example:"1"`
	MemberID  uint   `json:"member_id" binding:"required" example:"1"`
	IssueDate string `json:"issue_date" binding:"required,datetime=2006-01-02" example:"2024-02-20"`
}

// ReturnBookRequest HTTP归还请求
type ReturnBookRequest struct {
	ReturnDate string `json:"return_date" binding:"required,datetime=2006-01-02" example:"2024-03-08"`
}

// TransactionResponse HTTP借阅记录响应
// book_title/member_name是读取时联表填充的展示字段
type TransactionResponse struct {
	ID         uint    `json:"id" example:"1"`
	BookID     uint    `json:"book_id" example:"1"`
	MemberID   uint    `json:"member_id" example:"1"`
	BookTitle  string  `json:"book_title" example:"The Great Gatsby"`
	MemberName string  `json:"member_name" example:"John Doe"`
	IssueDate  string  `json:"issue_date" example:"2024-02-20"`
	DueDate    string  `json:"due_date" example:"2024-03-05"`
	ReturnDate *string `json:"return_date" example:"2024-03-08"`
	FineAmount float64 `json:"fine_amount" example:"3.0"`
	Status     string  `json:"status" example:"issued"`
}

// ToTransactionResponse 领域实体 → HTTP响应
func ToTransactionResponse(t *transaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID,
		BookID:     t.BookID,
		MemberID:   t.MemberID,
		BookTitle:  t.BookTitle,
		MemberName: t.MemberName,
		IssueDate:  FormatDate(t.IssueDate),
		DueDate:    FormatDate(t.DueDate),
		ReturnDate: FormatDatePtr(t.ReturnDate),
		FineAmount: t.FineAmount,
		Status:     t.Status,
	}
}

// ToTransactionListResponse 实体切片 → 响应数组
func ToTransactionListResponse(txns []*transaction.Transaction) []*TransactionResponse {
	list := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToTransactionResponse(t)
	}
	return list
}
