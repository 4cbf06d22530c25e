package service

import (
	"errors"
	"time"

	"github.com/MrSingh0729/transs-flow-final/internal/shared/ident"
)

// 业务校验错误
var (
	// ErrEvidenceRequired 有Not OK项但既无证据照片也无缺陷原因分析
	ErrEvidenceRequired = errors.New("evidence photo or defect cause required for Not OK items")
	// ErrInvalidStatus QE确认状态非法
	ErrInvalidStatus = errors.New("invalid confirm status")
	// ErrMissingField 动态表单提交缺少必填字段
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownFieldType 动态表单字段类型非法
	ErrUnknownFieldType = errors.New("unknown field type")
	// ErrSyncFailed 本地保存成功但远端同步失败，调用方按部分成功处理
	// 返回此错误时记录本身一并返回，绝不回滚本地写入
	ErrSyncFailed = errors.New("lark sync failed")
)

// newID 生成32位无连字符ID
func newID() string {
	return ident.New()
}

// nowFactoryDate 当前日期（按服务器时区取日零点）
func nowFactoryDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
