package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/jenishs/library/internal/application/book"
	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/interface/http/dto"
	apperrors "github.com/jenishs/library/pkg/errors"
	"github.com/jenishs/library/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. Handler只负责HTTP相关的事情:解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑(业务逻辑在domain和application层)
// 3. 使用依赖注入,便于测试
type BookHandler struct {
	addBookUseCase    *appbook.AddBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:    addBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按插入顺序返回全部馆藏图书
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookListResponse(books))
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  登记一本馆藏图书,副本数缺省为1
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "缺少必填字段或副本数不合法"
// @Router       /books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	pubDate, err := dto.ParseDatePtr(req.PublicationDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		PublicationDate: pubDate,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.Created(c, dto.ToBookResponse(result))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  部分更新:请求体中未出现的字段保留原值
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "要更新的字段"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "副本数不合法"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, book.ErrBookNotFound)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 出版日期:未提供或空串保留原值(与参考前端表单行为一致)
	var pubDate *string
	if req.PublicationDate != nil && *req.PublicationDate != "" {
		pubDate = req.PublicationDate
	}
	updateReq := appbook.UpdateBookRequest{
		ID:              id,
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	}
	if pubDate != nil {
		t, err := dto.ParseDate(*pubDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		updateReq.PublicationDate = &t
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), updateReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponse(result))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  硬删除;存在借阅记录的图书拒绝删除
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      204 "删除成功,无响应体"
// @Failure      400 {object} response.ErrorBody "存在借阅记录"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, book.ErrBookNotFound)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
