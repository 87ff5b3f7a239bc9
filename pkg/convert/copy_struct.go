package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from src to dst; nil pointer fields are skipped
// StructAssign 将 src 中同名字段拷贝到 dst；nil 指针字段会被跳过
func StructAssign(dst interface{}, src interface{}) error {
	return copier.Copy(dst, src)
}

// StructToMap converts a struct to a generic map through its JSON form
// StructToMap 通过 JSON 形式将结构体转换为通用 map
func StructToMap(param interface{}) (map[string]interface{}, error) {
	var data map[string]interface{}
	str, err := sonic.Marshal(param)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(str, &data); err != nil {
		return nil, err
	}
	return data, nil
}
