package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserCollection 用户集合名
const UserCollection = "users"

// User 用户集合文档，password 字段保存 bcrypt 哈希
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Username string        `bson:"username"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}
