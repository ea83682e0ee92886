package member

import (
	"context"

	"github.com/jenishs/library/internal/domain/member"
)

// DeleteMemberUseCase 会员删除用例
type DeleteMemberUseCase struct {
	memberService member.Service
}

// NewDeleteMemberUseCase 创建会员删除用例
func NewDeleteMemberUseCase(memberService member.Service) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{memberService: memberService}
}

// Execute 执行会员删除用例
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, id uint) error {
	return uc.memberService.DeleteMember(ctx, id)
}
