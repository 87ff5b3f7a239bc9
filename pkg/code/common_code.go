package code

import "net/http"

// Common codes // 通用码
var (
	Success = NewSuss(0, lang{
		en:    "Success",
		zh_cn: "成功",
	})
	Failed = NewError(1, http.StatusInternalServerError, lang{
		en:    "Failed",
		zh_cn: "失败",
	})
	ErrorInvalidParams = NewError(10001, http.StatusBadRequest, lang{
		en:    "Invalid request parameters",
		zh_cn: "请求参数错误",
	})
	ErrorServerInternal = NewError(10002, http.StatusInternalServerError, lang{
		en:    "Internal Server Error",
		zh_cn: "服务内部错误",
	})
	ErrorNotFoundAPI = NewError(10003, http.StatusNotFound, lang{
		en:    "API not found",
		zh_cn: "接口不存在",
	})
	ErrorDBQuery = NewError(10004, http.StatusInternalServerError, lang{
		en:    "Database query error",
		zh_cn: "数据库查询错误",
	})
)

// Note codes // 笔记相关码
var (
	SuccessNoteDelete = NewSuss(2001, lang{
		en:    "Note deleted successfully",
		zh_cn: "笔记删除成功",
	})
	SuccessNoteDeleteByUser = NewSuss(2002, lang{
		en:    "Deleted %d notes for user %s",
		zh_cn: "已删除 %d 条笔记（用户 %s）",
	})
	ErrorNoteNotFound = NewError(20001, http.StatusNotFound, lang{
		en:    "Note not found",
		zh_cn: "笔记不存在",
	})
	ErrorNoteIDNotValid = NewError(20002, http.StatusNotFound, lang{
		en:    "Invalid note ID format",
		zh_cn: "笔记 ID 格式错误",
	})
	ErrorNoteDeleteNotFound = NewError(20003, http.StatusNotFound, lang{
		en:    "No note found with this ID",
		zh_cn: "没有找到该 ID 对应的笔记",
	})
	ErrorUserNoNotes = NewError(20004, http.StatusNotFound, lang{
		en:    "User doesn't exist",
		zh_cn: "用户不存在",
	})
)

// User codes // 用户相关码
var (
	SuccessSignup = NewSuss(3001, lang{
		en:    "Signup successful",
		zh_cn: "注册成功",
	})
	SuccessLogin = NewSuss(3002, lang{
		en:    "Login successful",
		zh_cn: "登录成功",
	})
	SuccessUserExists = NewSuss(3003, lang{
		en:    "User already exists",
		zh_cn: "用户已存在",
	})
	ErrorUserLoginUsernameFailed = NewError(30001, http.StatusBadRequest, lang{
		en:    "Invalid username",
		zh_cn: "用户名错误",
	})
	ErrorUserLoginPasswordFailed = NewError(30002, http.StatusBadRequest, lang{
		en:    "Invalid password",
		zh_cn: "密码错误",
	})
	ErrorUserSignup = NewError(30003, http.StatusInternalServerError, lang{
		en:    "Internal Server Error",
		zh_cn: "注册失败，服务内部错误",
	})
	ErrorPasswordNotValid = NewError(30004, http.StatusInternalServerError, lang{
		en:    "Password hashing failed",
		zh_cn: "密码哈希失败",
	})
)
