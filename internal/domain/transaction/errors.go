package transaction

import (
	apperrors "github.com/jenishs/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrTransactionNotFound 借阅记录不存在
	ErrTransactionNotFound = apperrors.New(apperrors.ErrCodeTransactionNotFound, "借阅记录不存在")

	// ErrAlreadyReturned 重复归还
	// 参考实现会静默重放副本回补与罚金计算,这里显式拒绝
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeAlreadyReturned, "该借阅记录已归还")
)
