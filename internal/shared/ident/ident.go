// Package ident 数据库主键生成
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// New 生成32位无连字符ID，所有表主键统一此格式
func New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
