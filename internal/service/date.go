package service

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05Z"
)

// ErrInvalidDate 日期格式错误
var ErrInvalidDate = errors.New("日期格式错误，应为 YYYY-MM-DD")

// parseDate 解析 YYYY-MM-DD，统一为 UTC 零点
func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return datatypes.Date(t), nil
}

// toDate 取 t 所在的日历日
func toDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(datetimeLayout)
}

func dateBefore(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}

func dateEqual(a, b datatypes.Date) bool {
	return time.Time(a).Equal(time.Time(b))
}

func timeOf(d datatypes.Date) time.Time {
	return time.Time(d)
}
