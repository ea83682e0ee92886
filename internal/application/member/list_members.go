package member

import (
	"context"

	"github.com/jenishs/library/internal/domain/member"
)

// ListMembersUseCase 会员列表查询用例
type ListMembersUseCase struct {
	memberService member.Service
}

// NewListMembersUseCase 创建会员列表查询用例
func NewListMembersUseCase(memberService member.Service) *ListMembersUseCase {
	return &ListMembersUseCase{memberService: memberService}
}

// Execute 执行会员列表查询用例
func (uc *ListMembersUseCase) Execute(ctx context.Context) ([]*member.Member, error) {
	return uc.memberService.ListMembers(ctx)
}
