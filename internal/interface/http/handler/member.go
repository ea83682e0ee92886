package handler

import (
	"github.com/gin-gonic/gin"

	appmember "github.com/jenishs/library/internal/application/member"
	"github.com/jenishs/library/internal/domain/member"
	"github.com/jenishs/library/internal/interface/http/dto"
	apperrors "github.com/jenishs/library/pkg/errors"
	"github.com/jenishs/library/pkg/response"
)

// MemberHandler 会员HTTP处理器
type MemberHandler struct {
	registerMemberUseCase *appmember.RegisterMemberUseCase
	listMembersUseCase    *appmember.ListMembersUseCase
	updateMemberUseCase   *appmember.UpdateMemberUseCase
	deleteMemberUseCase   *appmember.DeleteMemberUseCase
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(
	registerMemberUseCase *appmember.RegisterMemberUseCase,
	listMembersUseCase *appmember.ListMembersUseCase,
	updateMemberUseCase *appmember.UpdateMemberUseCase,
	deleteMemberUseCase *appmember.DeleteMemberUseCase,
) *MemberHandler {
	return &MemberHandler{
		registerMemberUseCase: registerMemberUseCase,
		listMembersUseCase:    listMembersUseCase,
		updateMemberUseCase:   updateMemberUseCase,
		deleteMemberUseCase:   deleteMemberUseCase,
	}
}

// ListMembers 会员列表
// @Summary      会员列表
// @Description  按插入顺序返回全部会员
// @Tags         会员
// @Produce      json
// @Success      200 {array} dto.MemberResponse
// @Router       /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.listMembersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToMemberListResponse(members))
}

// RegisterMember 登记会员
// @Summary      登记会员
// @Description  创建新会员,入会日期为当天,默认有效
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMemberRequest true "会员信息"
// @Success      201 {object} dto.MemberResponse
// @Failure      400 {object} response.ErrorBody "缺少必填字段或邮箱已存在"
// @Router       /members [post]
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerMemberUseCase.Execute(c.Request.Context(), appmember.RegisterMemberRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToMemberResponse(result))
}

// UpdateMember 更新会员
// @Summary      更新会员
// @Description  部分更新:请求体中未出现的字段保留原值;is_active传false可停用会员
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        id path int true "会员ID"
// @Param        request body dto.UpdateMemberRequest true "要更新的字段"
// @Success      200 {object} dto.MemberResponse
// @Failure      404 {object} response.ErrorBody "会员不存在"
// @Router       /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, member.ErrMemberNotFound)
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateMemberUseCase.Execute(c.Request.Context(), appmember.UpdateMemberRequest{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToMemberResponse(result))
}

// DeleteMember 删除会员
// @Summary      删除会员
// @Description  硬删除;存在借阅记录的会员拒绝删除
// @Tags         会员
// @Produce      json
// @Param        id path int true "会员ID"
// @Success      204 "删除成功,无响应体"
// @Failure      400 {object} response.ErrorBody "存在借阅记录"
// @Failure      404 {object} response.ErrorBody "会员不存在"
// @Router       /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, member.ErrMemberNotFound)
		return
	}

	if err := h.deleteMemberUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
