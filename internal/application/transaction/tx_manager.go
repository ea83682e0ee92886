package transaction

import (
	"context"
)

// TxManager 事务边界抽象
// 设计说明:
// 1. 借出/归还涉及"副本数变更+借阅记录写入"两张表,必须同事务提交
// 2. 用例层只依赖此接口,由mysql.TxManager实现;单元测试注入直通实现即可
type TxManager interface {
	// Transaction fn内的所有Repository操作在同一事务中执行
	// fn返回error时回滚,返回nil时提交
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
