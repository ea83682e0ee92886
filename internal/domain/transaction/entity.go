package transaction

import (
	"time"
)

// 借阅状态
// 说明:overdue不是持久化状态,逾期与否总是在读取时由DueDate推导,
// 避免引入需要定时任务维护的冗余状态
const (
	StatusIssued   = "issued"   // 已借出
	StatusReturned = "returned" // 已归还(终态)
)

// 借阅规则常量
const (
	// LoanPeriodDays 借期:自借出日起14个自然日
	LoanPeriodDays = 14

	// FinePerDay 逾期罚金:每逾期1天收取1.0元(固定费率)
	FinePerDay = 1.0
)

// Transaction 借阅记录实体
// 状态机: issued --归还--> returned(终态)
// 不变式: ReturnDate与FineAmount仅在status=returned时有值
type Transaction struct {
	ID         uint
	BookID     uint       // 图书外键(创建后不变)
	MemberID   uint       // 会员外键(创建后不变)
	IssueDate  time.Time  // 借出日期(仅日期)
	DueDate    time.Time  // 应还日期 = 借出日期 + 14天,创建时固定,不再重算
	ReturnDate *time.Time // 归还日期(未归还时为nil)
	FineAmount float64    // 罚金(元),归还时一次性计算
	Status     string     // issued | returned

	// 读取时联表填充的展示字段,不落库
	BookTitle  string
	MemberName string
}

// NewTransaction 创建借阅记录(工厂方法)
// DueDate使用AddDate按自然日推算,自动处理跨月、跨年与闰年
func NewTransaction(bookID, memberID uint, issueDate time.Time) *Transaction {
	return &Transaction{
		BookID:    bookID,
		MemberID:  memberID,
		IssueDate: issueDate,
		DueDate:   issueDate.AddDate(0, 0, LoanPeriodDays),
		Status:    StatusIssued,
	}
}

// MarkReturned 归还(状态迁移 issued → returned)
// 业务规则:
// - 已归还的记录拒绝重复归还(防止副本数被重复回补)
// - 逾期天数 = 归还日期 - 应还日期(按日),罚金 = 逾期天数 × 1.0元
func (t *Transaction) MarkReturned(returnDate time.Time) error {
	if t.Status == StatusReturned {
		return ErrAlreadyReturned
	}

	t.ReturnDate = &returnDate
	t.FineAmount = calcFine(t.DueDate, returnDate)
	t.Status = StatusReturned
	return nil
}

// IsOverdue 是否逾期(派生条件,不持久化)
// 定义:仍处于issued状态且应还日期严格早于评估日期
func (t *Transaction) IsOverdue(asOf time.Time) bool {
	return t.Status == StatusIssued && t.DueDate.Before(asOf)
}

// calcFine 计算罚金
// 日期均为当天零点(UTC),相减即为整数天,不存在时区/夏令时偏差
func calcFine(dueDate, returnDate time.Time) float64 {
	if !returnDate.After(dueDate) {
		return 0
	}
	daysOverdue := int(returnDate.Sub(dueDate).Hours() / 24)
	return float64(daysOverdue) * FinePerDay
}
