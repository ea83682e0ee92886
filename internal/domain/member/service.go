package member

import (
	"context"
)

// Service 会员领域服务接口
type Service interface {
	// RegisterMember 登记新会员
	// 业务规则:姓名、邮箱必填;邮箱不能重复(数据库唯一索引兜底)
	RegisterMember(ctx context.Context, name, email, phone, address string) (*Member, error)

	// ListMembers 返回全部会员(插入顺序)
	ListMembers(ctx context.Context) ([]*Member, error)

	// UpdateMember 部分更新会员,未提供的字段保留原值
	UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error)

	// DeleteMember 删除会员
	// 业务规则:存在借阅记录的会员禁止删除(restrict策略)
	DeleteMember(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建会员领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RegisterMember 登记新会员
func (s *service) RegisterMember(ctx context.Context, name, email, phone, address string) (*Member, error) {
	// 1. 创建会员实体(工厂方法内部校验必填项)
	m, err := NewMember(name, email, phone, address)
	if err != nil {
		return nil, err
	}

	// 2. 持久化(Repository负责将邮箱唯一索引冲突转换为ErrEmailDuplicate)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ListMembers 返回全部会员
func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

// UpdateMember 部分更新会员
func (s *service) UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.Apply(params); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// DeleteMember 删除会员
func (s *service) DeleteMember(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
