package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段的验证错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString 将全部验证错误拼接为单个字符串
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// MapsToString 返回 字段 => 错误消息 映射，用于响应的 data 部分
func (v ValidErrors) MapsToString() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds request params and translates validation errors
// BindAndValid 绑定请求参数并翻译验证错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{
			Key:     "body",
			Message: err.Error(),
		})
		return false, errs
	}

	// The translator is injected by the lang middleware; fall back to raw messages
	// 翻译器由 lang 中间件注入；缺失时退回原始消息
	trans, transOK := c.Get("trans")
	for key, value := range verrs.Translate(translatorOrNil(trans, transOK)) {
		errs = append(errs, &ValidError{
			Key:     key,
			Message: value,
		})
	}
	return false, errs
}

func translatorOrNil(v interface{}, ok bool) ut.Translator {
	if !ok {
		return nil
	}
	trans, ok := v.(ut.Translator)
	if !ok {
		return nil
	}
	return trans
}
