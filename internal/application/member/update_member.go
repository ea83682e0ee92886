package member

import (
	"context"

	"github.com/jenishs/library/internal/domain/member"
)

// UpdateMemberUseCase 会员更新用例
type UpdateMemberUseCase struct {
	memberService member.Service
}

// NewUpdateMemberUseCase 创建会员更新用例
func NewUpdateMemberUseCase(memberService member.Service) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{memberService: memberService}
}

// UpdateMemberRequest 会员更新请求DTO
// 部分更新语义:nil字段保留原值
// IsActive必须用指针:false是合法的覆盖值("停用会员"),不能与未提供混淆
type UpdateMemberRequest struct {
	ID       uint
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// Execute 执行会员更新用例
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, req UpdateMemberRequest) (*member.Member, error) {
	return uc.memberService.UpdateMember(ctx, req.ID, member.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
}
