package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 状态码
	code int
	// HTTP 状态码
	statusCode int
	// 状态
	status bool
	// 错误消息
	Lang lang
	// 消息格式化参数
	msgArgs []interface{}
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers an error code with the HTTP status it maps to
// NewError 注册一个错误码以及它对应的 HTTP 状态码
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, statusCode: statusCode, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code, always answered with HTTP 200
// NewSuss 注册一个成功码，始终以 HTTP 200 应答
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, statusCode: http.StatusOK, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
// WithData / WithDetails / WithMsgArgs 都基于副本工作，注册的模板对象保持不变
func (e *Code) Clone() *Code {
	return &Code{
		code:        e.code,
		statusCode:  e.statusCode,
		status:      e.status,
		Lang:        e.Lang,
		details:     []string{},
		haveDetails: false,
	}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

// Msg returns the localized message, formatted when message args were attached
// Msg 返回本地化消息，如果附加了格式化参数则进行格式化
func (e *Code) Msg() string {
	if len(e.msgArgs) > 0 {
		return fmt.Sprintf(e.Lang.GetMessage(), e.msgArgs...)
	}
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// WithMsgArgs attaches fmt args for codes whose lang message is a format string
// WithMsgArgs 为消息模板附加 fmt 格式化参数
func (e *Code) WithMsgArgs(args ...interface{}) *Code {
	c := e.Clone()
	c.msgArgs = args
	return c
}

func (e *Code) StatusCode() int {
	if e.statusCode == 0 {
		return http.StatusOK
	}
	return e.statusCode
}
