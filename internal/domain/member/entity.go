package member

import (
	"time"
)

// Member 会员实体
// 设计说明:
// 1. Email是业务唯一标识(数据库层保证唯一性)
// 2. MembershipDate缺省为注册当天(仅日期)
// 3. 会员的借阅历史由transaction聚合持有外键引用,Member本身不持有
type Member struct {
	ID             uint
	Name           string    // 姓名
	Email          string    // 邮箱(唯一)
	Phone          string    // 电话(可选)
	Address        string    // 地址(可选)
	MembershipDate time.Time // 入会日期(仅日期)
	IsActive       bool      // 是否有效会员
}

// NewMember 创建新会员(工厂方法)
func NewMember(name, email, phone, address string) (*Member, error) {
	if name == "" || email == "" {
		return nil, ErrMissingRequired
	}

	now := time.Now().UTC()
	return &Member{
		Name:           name,
		Email:          email,
		Phone:          phone,
		Address:        address,
		MembershipDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}, nil
}

// UpdateParams 部分更新参数
// 指针字段区分"未提供"(保留原值)与"提供了零值"(覆盖)
// IsActive必须用指针,否则无法表达"停用会员"(false会被当作未提供)
type UpdateParams struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// Apply 应用部分更新
// 业务规则:必填字段不能清空
func (m *Member) Apply(p UpdateParams) error {
	if p.Name != nil {
		if *p.Name == "" {
			return ErrMissingRequired
		}
		m.Name = *p.Name
	}
	if p.Email != nil {
		if *p.Email == "" {
			return ErrMissingRequired
		}
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Address != nil {
		m.Address = *p.Address
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	return nil
}
