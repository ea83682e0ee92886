package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务在context中的键(非导出类型,避免与其他包冲突)
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内通过同一ctx调用的所有Repository操作都会在同一事务中执行
//
// 借阅用例的典型用法:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 原子扣减可借副本
//	    if err := bookRepo.DecrementAvailable(ctx, bookID); err != nil {
//	        return err // 自动回滚
//	    }
//	    // 2. 创建借阅记录
//	    return txnRepo.Create(ctx, txn) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入Context,Repository的getDB会提取它
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// dbFromContext 从context提取事务DB,没有则返回默认DB
// 所有Repository统一经由此函数取DB,保证事务传递
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
