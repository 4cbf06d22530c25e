package larksync

import (
	"strconv"
	"strings"
	"time"
)

// 远端表格按工厂所在时区（印度标准时间）解释日期字段
var factoryTZ = loadFactoryTZ()

func loadFactoryTZ() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST = UTC+5:30，无夏令时
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// SafeInt 宽容地把任意值转为int，nil、空串和无法解析的值一律按0处理
func SafeInt(val interface{}) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// YesNo 布尔值转为远端表格使用的 "Yes"/"No" 文本
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// DateToMillis 取日期在工厂时区的零点，转为毫秒时间戳
// 多维表格的日期列使用毫秒时间戳表示
func DateToMillis(t time.Time) int64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, factoryTZ)
	return midnight.UnixMilli()
}

// MillisToDate 毫秒时间戳还原为工厂时区的日期
func MillisToDate(ms int64) time.Time {
	return time.UnixMilli(ms).In(factoryTZ)
}

// TimeToMillis 时刻转为毫秒时间戳
func TimeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
