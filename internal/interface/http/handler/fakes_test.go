package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appbook "github.com/jenishs/library/internal/application/book"
	appmember "github.com/jenishs/library/internal/application/member"
	appstats "github.com/jenishs/library/internal/application/stats"
	apptxn "github.com/jenishs/library/internal/application/transaction"
	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/member"
	"github.com/jenishs/library/internal/domain/transaction"
)

// Handler层测试装置:
// 真实的Handler + 应用层用例 + 领域服务,只把仓储换成内存实现,
// 通过httptest走完整的HTTP请求→JSON响应链路

func init() {
	gin.SetMode(gin.TestMode)
}

type memBookRepo struct {
	books  []*book.Book
	nextID uint
	// 记录有借阅引用的图书ID,Delete时还原restrict语义
	referenced map[uint]bool
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{nextID: 1, referenced: make(map[uint]bool)}
}

func (r *memBookRepo) Create(ctx context.Context, b *book.Book) error {
	if b.ISBN != "" {
		for _, existing := range r.books {
			if existing.ISBN == b.ISBN {
				return book.ErrISBNDuplicate
			}
		}
	}
	b.ID = r.nextID
	r.nextID++
	r.books = append(r.books, b)
	return nil
}

func (r *memBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *memBookRepo) List(ctx context.Context) ([]*book.Book, error) {
	return r.books, nil
}

func (r *memBookRepo) Update(ctx context.Context, b *book.Book) error {
	for i, existing := range r.books {
		if existing.ID == b.ID {
			r.books[i] = b
			return nil
		}
	}
	return book.ErrBookNotFound
}

func (r *memBookRepo) Delete(ctx context.Context, id uint) error {
	for i, b := range r.books {
		if b.ID == id {
			if r.referenced[id] {
				return book.ErrHasTransactions
			}
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return book.ErrBookNotFound
}

func (r *memBookRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.books)), nil
}

func (r *memBookRepo) DecrementAvailable(ctx context.Context, id uint) error {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b.AvailableCopies <= 0 {
		return book.ErrNoCopiesAvailable
	}
	b.AvailableCopies--
	return nil
}

func (r *memBookRepo) IncrementAvailable(ctx context.Context, id uint) error {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b.AvailableCopies >= b.TotalCopies {
		return book.ErrInvalidCopies
	}
	b.AvailableCopies++
	return nil
}

type memMemberRepo struct {
	members    []*member.Member
	nextID     uint
	referenced map[uint]bool
}

func newMemMemberRepo() *memMemberRepo {
	return &memMemberRepo{nextID: 1, referenced: make(map[uint]bool)}
}

func (r *memMemberRepo) Create(ctx context.Context, m *member.Member) error {
	for _, existing := range r.members {
		if existing.Email == m.Email {
			return member.ErrEmailDuplicate
		}
	}
	m.ID = r.nextID
	r.nextID++
	r.members = append(r.members, m)
	return nil
}

func (r *memMemberRepo) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *memMemberRepo) List(ctx context.Context) ([]*member.Member, error) {
	return r.members, nil
}

func (r *memMemberRepo) Update(ctx context.Context, m *member.Member) error {
	for i, existing := range r.members {
		if existing.ID == m.ID {
			r.members[i] = m
			return nil
		}
	}
	return member.ErrMemberNotFound
}

func (r *memMemberRepo) Delete(ctx context.Context, id uint) error {
	for i, m := range r.members {
		if m.ID == id {
			if r.referenced[id] {
				return member.ErrHasTransactions
			}
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return member.ErrMemberNotFound
}

func (r *memMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

type memTxnRepo struct {
	txns     []*transaction.Transaction
	nextID   uint
	bookRepo *memBookRepo
	memRepo  *memMemberRepo
}

func newMemTxnRepo(bookRepo *memBookRepo, memRepo *memMemberRepo) *memTxnRepo {
	return &memTxnRepo{nextID: 1, bookRepo: bookRepo, memRepo: memRepo}
}

func (r *memTxnRepo) Create(ctx context.Context, txn *transaction.Transaction) error {
	txn.ID = r.nextID
	r.nextID++
	r.txns = append(r.txns, txn)
	if r.bookRepo != nil {
		r.bookRepo.referenced[txn.BookID] = true
	}
	if r.memRepo != nil {
		r.memRepo.referenced[txn.MemberID] = true
	}
	return nil
}

// FindByID 联表展示字段在真实仓储里JOIN填充,这里从内存仓储补齐
func (r *memTxnRepo) FindByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	for _, txn := range r.txns {
		if txn.ID == id {
			r.fillJoinFields(ctx, txn)
			return txn, nil
		}
	}
	return nil, transaction.ErrTransactionNotFound
}

func (r *memTxnRepo) List(ctx context.Context) ([]*transaction.Transaction, error) {
	for _, txn := range r.txns {
		r.fillJoinFields(ctx, txn)
	}
	return r.txns, nil
}

func (r *memTxnRepo) Update(ctx context.Context, txn *transaction.Transaction) error {
	for i, existing := range r.txns {
		if existing.ID == txn.ID {
			r.txns[i] = txn
			return nil
		}
	}
	return transaction.ErrTransactionNotFound
}

func (r *memTxnRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, txn := range r.txns {
		if txn.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memTxnRepo) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var n int64
	for _, txn := range r.txns {
		if txn.IsOverdue(asOf) {
			n++
		}
	}
	return n, nil
}

func (r *memTxnRepo) fillJoinFields(ctx context.Context, txn *transaction.Transaction) {
	if r.bookRepo != nil {
		if b, err := r.bookRepo.FindByID(ctx, txn.BookID); err == nil {
			txn.BookTitle = b.Title
		}
	}
	if r.memRepo != nil {
		if m, err := r.memRepo.FindByID(ctx, txn.MemberID); err == nil {
			txn.MemberName = m.Name
		}
	}
}

// noopTxManager 直通事务管理器
type noopTxManager struct{}

func (noopTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// testRouter 组装与生产路由一致的测试路由
type testFixture struct {
	router     *gin.Engine
	bookRepo   *memBookRepo
	memberRepo *memMemberRepo
	txnRepo    *memTxnRepo
}

func newTestFixture() *testFixture {
	bookRepo := newMemBookRepo()
	memberRepo := newMemMemberRepo()
	txnRepo := newMemTxnRepo(bookRepo, memberRepo)

	bookService := book.NewService(bookRepo)
	memberService := member.NewService(memberRepo)

	bookHandler := NewBookHandler(
		appbook.NewAddBookUseCase(bookService),
		appbook.NewListBooksUseCase(bookService),
		appbook.NewUpdateBookUseCase(bookService),
		appbook.NewDeleteBookUseCase(bookService),
	)
	memberHandler := NewMemberHandler(
		appmember.NewRegisterMemberUseCase(memberService),
		appmember.NewListMembersUseCase(memberService),
		appmember.NewUpdateMemberUseCase(memberService),
		appmember.NewDeleteMemberUseCase(memberService),
	)
	txnHandler := NewTransactionHandler(
		apptxn.NewIssueBookUseCase(bookRepo, txnRepo, noopTxManager{}),
		apptxn.NewReturnBookUseCase(bookRepo, txnRepo, noopTxManager{}),
		apptxn.NewListTransactionsUseCase(txnRepo),
	)
	statsHandler := NewStatsHandler(
		appstats.NewGetStatsUseCase(bookRepo, memberRepo, txnRepo),
	)

	r := gin.New()
	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.POST("", bookHandler.AddBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}
	members := r.Group("/members")
	{
		members.GET("", memberHandler.ListMembers)
		members.POST("", memberHandler.RegisterMember)
		members.PUT("/:id", memberHandler.UpdateMember)
		members.DELETE("/:id", memberHandler.DeleteMember)
	}
	transactions := r.Group("/transactions")
	{
		transactions.GET("", txnHandler.ListTransactions)
		transactions.POST("/issue", txnHandler.IssueBook)
		transactions.PUT("/:id/return", txnHandler.ReturnBook)
	}
	r.GET("/stats", statsHandler.GetStats)

	return &testFixture{
		router:     r,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
	}
}

// doJSON 发送JSON请求并返回响应
func (f *testFixture) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// decode 解析响应体JSON
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "解析响应体失败: %s", w.Body.String())
}
