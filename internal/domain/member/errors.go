package member

import (
	apperrors "github.com/jenishs/library/pkg/errors"
)

// 会员领域错误定义
var (
	// ErrMemberNotFound 会员不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")

	// ErrEmailDuplicate 邮箱已存在
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")

	// ErrMissingRequired 缺少必填字段
	ErrMissingRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名和邮箱为必填项")

	// ErrHasTransactions 会员存在借阅记录,禁止删除
	ErrHasTransactions = apperrors.New(apperrors.ErrCodeHasTransactions, "会员存在借阅记录,无法删除")
)
