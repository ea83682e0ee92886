package transaction

import (
	"context"
	"time"

	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/transaction"
)

// 测试替身:内存仓储
// 设计说明:接口由domain层定义,测试里用map实现即可,不需要Mock框架,
// 关键是DecrementAvailable/IncrementAvailable要还原带条件更新的语义

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	b.ID = uint(len(r.books) + 1)
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) List(ctx context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.books)), nil
}

// DecrementAvailable 还原真实仓储的带条件更新语义:
// 不存在 → ErrBookNotFound,无可借副本 → ErrNoCopiesAvailable
func (r *fakeBookRepo) DecrementAvailable(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.AvailableCopies <= 0 {
		return book.ErrNoCopiesAvailable
	}
	b.AvailableCopies--
	return nil
}

func (r *fakeBookRepo) IncrementAvailable(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.AvailableCopies >= b.TotalCopies {
		return book.ErrInvalidCopies
	}
	b.AvailableCopies++
	return nil
}

type fakeTxnRepo struct {
	txns   map[uint]*transaction.Transaction
	nextID uint
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{txns: make(map[uint]*transaction.Transaction), nextID: 1}
}

func (r *fakeTxnRepo) Create(ctx context.Context, txn *transaction.Transaction) error {
	txn.ID = r.nextID
	r.nextID++
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) FindByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, transaction.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *fakeTxnRepo) List(ctx context.Context) ([]*transaction.Transaction, error) {
	out := make([]*transaction.Transaction, 0, len(r.txns))
	for _, txn := range r.txns {
		out = append(out, txn)
	}
	return out, nil
}

func (r *fakeTxnRepo) Update(ctx context.Context, txn *transaction.Transaction) error {
	if _, ok := r.txns[txn.ID]; !ok {
		return transaction.ErrTransactionNotFound
	}
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, txn := range r.txns {
		if txn.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeTxnRepo) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var n int64
	for _, txn := range r.txns {
		if txn.IsOverdue(asOf) {
			n++
		}
	}
	return n, nil
}

// fakeTxManager 直通事务管理器:测试中不需要真实事务,直接执行回调
type fakeTxManager struct{}

func (fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustNewBook(id uint, title string, total, available int) *book.Book {
	b, err := book.NewBook(title, "测试作者", "", "", nil, total, available)
	if err != nil {
		panic(err)
	}
	b.ID = id
	return b
}
