package dto

import (
	"github.com/jenishs/library/internal/domain/member"
)

// CreateMemberRequest HTTP会员登记请求
type CreateMemberRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"John Doe"`
	Email   string `json:"email" binding:"required,email,max=120" example:"john.doe@email.com"`
	Phone   string `json:"phone" binding:"omitempty,max=20" example:"123-456-7890"`
	Address string `json:"address" binding:"omitempty" example:"123 Main St, City, State"`
}

// UpdateMemberRequest HTTP会员更新请求
// 部分更新语义:未出现的字段保留原值;is_active用指针,false是合法覆盖值
type UpdateMemberRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Address  *string `json:"address" binding:"omitempty"`
	IsActive *bool   `json:"is_active"`
}

// MemberResponse HTTP会员响应
type MemberResponse struct {
	ID             uint    `json:"id" example:"1"`
	Name           string  `json:"name" example:"John Doe"`
	Email          string  `json:"email" example:"john.doe@email.com"`
	Phone          *string `json:"phone" example:"123-456-7890"`
	Address        *string `json:"address" example:"123 Main St, City, State"`
	MembershipDate string  `json:"membership_date" example:"2024-01-15"`
	IsActive       bool    `json:"is_active" example:"true"`
}

// ToMemberResponse 领域实体 → HTTP响应
func ToMemberResponse(m *member.Member) *MemberResponse {
	resp := &MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		MembershipDate: FormatDate(m.MembershipDate),
		IsActive:       m.IsActive,
	}
	if m.Phone != "" {
		resp.Phone = &m.Phone
	}
	if m.Address != "" {
		resp.Address = &m.Address
	}
	return resp
}

// ToMemberListResponse 实体切片 → 响应数组
func ToMemberListResponse(members []*member.Member) []*MemberResponse {
	list := make([]*MemberResponse, len(members))
	for i, m := range members {
		list[i] = ToMemberResponse(m)
	}
	return list
}
