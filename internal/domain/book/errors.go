package book

import (
	apperrors "github.com/jenishs/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrMissingRequired 缺少必填字段
	ErrMissingRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名和作者为必填项")

	// ErrInvalidCopies 副本数不合法
	ErrInvalidCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "副本数必须满足 0 <= 可借数 <= 总数")

	// ErrNoCopiesAvailable 无可借副本
	ErrNoCopiesAvailable = apperrors.New(apperrors.ErrCodeNoCopiesAvail, "No copies available")

	// ErrHasTransactions 图书存在借阅记录,禁止删除
	ErrHasTransactions = apperrors.New(apperrors.ErrCodeHasTransactions, "图书存在借阅记录,无法删除")
)
