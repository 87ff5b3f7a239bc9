// Package model 定义 MongoDB 持久化模型
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NoteCollection 笔记集合名
const NoteCollection = "notes"

// Note 笔记集合文档
type Note struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Title      string        `bson:"title"`
	Content    string        `bson:"content"`
	User       string        `bson:"user"`
	Tags       []string      `bson:"tags"`
	IsArchived bool          `bson:"is_archived"`
	CreatedAt  time.Time     `bson:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at"`
}
