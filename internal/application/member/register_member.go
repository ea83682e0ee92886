package member

import (
	"context"

	"github.com/jenishs/library/internal/domain/member"
)

// RegisterMemberUseCase 会员登记用例
type RegisterMemberUseCase struct {
	memberService member.Service
}

// NewRegisterMemberUseCase 创建会员登记用例
func NewRegisterMemberUseCase(memberService member.Service) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{memberService: memberService}
}

// RegisterMemberRequest 会员登记请求DTO
type RegisterMemberRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Execute 执行会员登记用例
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, req RegisterMemberRequest) (*member.Member, error) {
	return uc.memberService.RegisterMember(ctx, req.Name, req.Email, req.Phone, req.Address)
}
