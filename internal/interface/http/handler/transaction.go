package handler

import (
	"github.com/gin-gonic/gin"

	apptxn "github.com/jenishs/library/internal/application/transaction"
	"github.com/jenishs/library/internal/domain/transaction"
	"github.com/jenishs/library/internal/interface/http/dto"
	apperrors "github.com/jenishs/library/pkg/errors"
	"github.com/jenishs/library/pkg/response"
)

// TransactionHandler 借阅HTTP处理器
type TransactionHandler struct {
	issueBookUseCase        *apptxn.IssueBookUseCase
	returnBookUseCase       *apptxn.ReturnBookUseCase
	listTransactionsUseCase *apptxn.ListTransactionsUseCase
}

// NewTransactionHandler 创建借阅处理器
func NewTransactionHandler(
	issueBookUseCase *apptxn.IssueBookUseCase,
	returnBookUseCase *apptxn.ReturnBookUseCase,
	listTransactionsUseCase *apptxn.ListTransactionsUseCase,
) *TransactionHandler {
	return &TransactionHandler{
		issueBookUseCase:        issueBookUseCase,
		returnBookUseCase:       returnBookUseCase,
		listTransactionsUseCase: listTransactionsUseCase,
	}
}

// ListTransactions 借阅记录列表
// @Summary      借阅记录列表
// @Description  按插入顺序返回全部借阅记录,含联表的book_title/member_name
// @Tags         借阅
// @Produce      json
// @Success      200 {array} dto.TransactionResponse
// @Router       /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txns, err := h.listTransactionsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionListResponse(txns))
}

// IssueBook 借出图书
// @Summary      借出图书
// @Description  扣减1个可借副本并创建借阅记录,应还日期=借出日期+14天;两者在同一事务中
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.IssueBookRequest true "借出信息"
// @Success      201 {object} dto.TransactionResponse
// @Failure      400 {object} response.ErrorBody "无可借副本"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /transactions/issue [post]
func (h *TransactionHandler) IssueBook(c *gin.Context) {
	var req dto.IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	issueDate, err := dto.ParseDate(req.IssueDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.issueBookUseCase.Execute(c.Request.Context(), apptxn.IssueBookRequest{
		BookID:    req.BookID,
		MemberID:  req.MemberID,
		IssueDate: issueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToTransactionResponse(result))
}

// ReturnBook 归还图书
// @Summary      归还图书
// @Description  写入归还日期与罚金(每逾期1天1.0元),回补1个可借副本;重复归还会被拒绝
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Param        request body dto.ReturnBookRequest true "归还信息"
// @Success      200 {object} dto.TransactionResponse
// @Failure      400 {object} response.ErrorBody "记录已归还"
// @Failure      404 {object} response.ErrorBody "借阅记录不存在"
// @Router       /transactions/{id}/return [put]
func (h *TransactionHandler) ReturnBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, transaction.ErrTransactionNotFound)
		return
	}

	var req dto.ReturnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	returnDate, err := dto.ParseDate(req.ReturnDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), apptxn.ReturnBookRequest{
		TransactionID: id,
		ReturnDate:    returnDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionResponse(result))
}
