package dao

import (
	"github.com/quillnote/quill-note-service/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseObjectID 将外部传入的十六进制标识符转换为 ObjectID
// 非法输入统一映射为 domain.ErrInvalidID，调用方据此在触达存储层之前拒绝请求
func ParseObjectID(raw string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, domain.ErrInvalidID
	}
	return id, nil
}

// IsValidObjectID 标识符是否为合法的 ObjectID 编码
func IsValidObjectID(raw string) bool {
	_, err := bson.ObjectIDFromHex(raw)
	return err == nil
}
