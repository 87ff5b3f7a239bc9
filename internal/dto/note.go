// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/quillnote/quill-note-service/pkg/timex"

// NoteCreateRequest 创建笔记的请求参数
// 不接受 id 与时间戳，它们由存储层生成
type NoteCreateRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content"`
	User       string   `json:"user" binding:"required"`
	Tags       []string `json:"tags"`
	IsArchived bool     `json:"is_archived"`
}

// NoteUpdateRequest 部分更新的请求参数
// 指针为 nil 表示未提供该字段；没有 user 字段，归属不可变
type NoteUpdateRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsArchived *bool     `json:"is_archived"`
}

// NoteDTO 笔记响应结构体，_id 以十六进制字符串输出
type NoteDTO struct {
	ID         string     `json:"_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	User       string     `json:"user"`
	Tags       []string   `json:"tags"`
	IsArchived bool       `json:"is_archived"`
	CreatedAt  timex.Time `json:"created_at"`
	UpdatedAt  timex.Time `json:"updated_at"`
}
