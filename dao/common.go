package dao

import (
	"StudentManagementSystem/common"
	"time"
)

//提取数据库的某一列, 提供方法转化为对应类型,不提供错误,自己注意. 另外redis获取的结果都是字符串,需要特判转化
type Col struct {
	data interface{}
}

func (c *Col) ToString() string {
	if s, ok := c.data.(string); ok {
		return s
	}
	return string(c.data.([]byte))
}
func (c *Col) ToInt64() int64 {
	if s, ok := c.data.(string); ok {
		return common.StrToInt64(s)
	}
	return c.data.(int64)
}
func (c *Col) ToBool() bool {
	if s, ok := c.data.(string); ok {
		return common.StrToBool(s)
	}
	if c.data.(int64) == 1 {
		return true
	}
	return false
}
func (c *Col) ToFloat64() float64 {
	if s, ok := c.data.(string); ok {
		return common.StrToFloat64(s)
	}
	return c.data.(float64)
}
func (c *Col) ToTime() time.Time {
	t := c.ToString()
	return common.StrToTimeOrDate(t)
}

//原生sql语句构造
func ToSqlConditions(cols []string) string {
	n := len(cols)
	sql := cols[0] + " = ?"
	for i := 1; i < n; i++ {
		sql += " and " + cols[i] + " = ?"
	}
	return sql
}
func ToSqlSelect(wants ...string) string {
	n := len(wants)
	sql := "select " + wants[0]
	for i := 1; i < n; i++ {
		sql += "," + wants[i]
	}
	return sql
}
