package common

import (
	"reflect"
	"strconv"
	"time"
)

const (
	TIME_FORMAT = "2006-01-02 15:04:05"
	DATE_FORMAT = "2006-01-02" //出生日期和考勤日期只精确到天
)

//下面转换不进行错误处理

//字符串转64位整型
func StrToInt64(s string) int64 {
	ret, _ := strconv.ParseInt(s, 10, 64)
	return ret
}

//字符串转64位无符号整型
func StrToUint64(s string) uint64 {
	ret, _ := strconv.ParseUint(s, 10, 64)
	return ret
}
func StrToBool(s string) bool {
	ret, _ := strconv.ParseBool(s)
	return ret
}
func StrToFloat64(s string) float64 {
	ret, _ := strconv.ParseFloat(s, 64)
	return ret
}
func TimeToStr(t time.Time) string {
	return t.Format(TIME_FORMAT)
}

//先按完整时间解析,失败再按日期解析
func StrToTimeOrDate(s string) time.Time {
	if t, err := time.ParseInLocation(TIME_FORMAT, s, time.Local); err == nil {
		return t
	}
	return StrToDate(s)
}

//日期串转time,非法日期返回零值
func StrToDate(s string) time.Time {
	t, _ := time.ParseInLocation(DATE_FORMAT, s, time.Local)
	return t
}
func DateToStr(t time.Time) string {
	return t.Format(DATE_FORMAT)
}

//判断日期串是否合法
func IsValidDate(s string) bool {
	_, err := time.ParseInLocation(DATE_FORMAT, s, time.Local)
	return err == nil
}

//将结构体按照json tag 转换成 map
func StructToMapByJsonTag(obj interface{}) map[string]interface{} {
	rType := reflect.TypeOf(obj)
	rVal := reflect.ValueOf(obj)
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
		rVal = rVal.Elem()
	}
	mp := make(map[string]interface{})
	for i := 0; i < rType.NumField(); i++ {
		t := rType.Field(i)
		value := rVal.Field(i).Interface()
		tag := t.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		switch value.(type) {
		case time.Time:
			mp[tag] = value.(time.Time).Format(TIME_FORMAT)
		default:
			mp[tag] = value
		}
	}
	return mp
}
