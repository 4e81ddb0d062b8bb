package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON 任意结构的 JSON 列（待结算商品快照等）
type JSON map[string]interface{}

// Value 实现 driver.Valuer
func (j JSON) Value() (driver.Value, error) {
	return marshalColumn(j, j == nil)
}

// Scan 实现 sql.Scanner，NULL 读为空 map
func (j *JSON) Scan(value interface{}) error {
	*j = JSON{}
	return unmarshalColumn(value, j)
}

// StringArray 以 JSON 数组存储的字符串列表（商品图片）
type StringArray []string

// Value 实现 driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	return marshalColumn(s, s == nil)
}

// Scan 实现 sql.Scanner，NULL 读为空切片
func (s *StringArray) Scan(value interface{}) error {
	*s = StringArray{}
	return unmarshalColumn(value, s)
}

func marshalColumn(v interface{}, isNil bool) (driver.Value, error) {
	if isNil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func unmarshalColumn(value interface{}, dest interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
