package dto

import (
	"time"

	apperrors "github.com/jenishs/library/pkg/errors"
)

// DateLayout 接口上所有日期字段的格式(ISO-8601日历日期,无时间部分)
const DateLayout = "2006-01-02"

// ParseDate 解析YYYY-MM-DD为UTC当天零点
// 所有日期字段统一零点对齐,日期相减即为整数天
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}

// ParseDatePtr 解析可选日期,空串视为未提供(与参考前端的表单行为一致)
func ParseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate 格式化为YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr 格式化可选日期,nil → nil(JSON里输出null)
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
