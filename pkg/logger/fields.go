package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldUser 笔记归属用户字段
	FieldUser = "user"

	// FieldUsername 用户名字段
	FieldUsername = "username"

	// FieldCount 记录数量字段
	FieldCount = "count"
)
