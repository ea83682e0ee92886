package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jenishs/library/internal/domain/member"
	apperrors "github.com/jenishs/library/pkg/errors"
)

// memberRepository 会员仓储实现(MySQL)
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建会员
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := toMemberModel(m)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建会员失败")
	}

	m.ID = model.ID
	return nil
}

// FindByID 根据ID查找会员
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

// List 按插入顺序返回全部会员
func (r *memberRepository) List(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := dbFromContext(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询会员列表失败")
	}

	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}
	return members, nil
}

// Update 更新会员信息
func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	err := dbFromContext(ctx, r.db).Model(&MemberModel{ID: m.ID}).
		Select("name", "email", "phone", "address", "is_active").
		Updates(toMemberModel(m)).Error
	if err != nil {
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "更新会员失败")
	}
	return nil
}

// Delete 删除会员(硬删除)
// 业务规则:存在借阅记录的会员禁止删除(restrict策略)
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	var refs int64
	if err := db.Model(&TransactionModel{}).Where("member_id = ?", id).Count(&refs).Error; err != nil {
		return apperrors.Wrap(err, "检查借阅记录失败")
	}
	if refs > 0 {
		return member.ErrHasTransactions
	}

	result := db.Delete(&MemberModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除会员失败")
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

// Count 会员总数
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := dbFromContext(ctx, r.db).Model(&MemberModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计会员总数失败")
	}
	return total, nil
}

// toMemberEntity GORM模型 → 领域实体
func toMemberEntity(model *MemberModel) *member.Member {
	return &member.Member{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Phone:          model.Phone,
		Address:        model.Address,
		MembershipDate: model.MembershipDate,
		IsActive:       model.IsActive,
	}
}

// toMemberModel 领域实体 → GORM模型
func toMemberModel(m *member.Member) *MemberModel {
	return &MemberModel{
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		MembershipDate: m.MembershipDate,
		IsActive:       m.IsActive,
	}
}
