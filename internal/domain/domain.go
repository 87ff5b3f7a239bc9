// Package domain 定义领域模型与仓储接口
package domain

import "errors"

// 仓储层哨兵错误，由 service 层映射为对外错误码
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID 标识符不是合法的 ObjectID 十六进制编码
	ErrInvalidID = errors.New("invalid id format")
)
