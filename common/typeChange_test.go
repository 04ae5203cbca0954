package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrConversions(t *testing.T) {
	assert.Equal(t, int64(-7), StrToInt64("-7"))
	assert.Equal(t, uint64(10), StrToUint64("10"))
	assert.Equal(t, true, StrToBool("true"))
	assert.Equal(t, false, StrToBool("xx"))
	assert.Equal(t, 95.5, StrToFloat64("95.5"))
	assert.Equal(t, int64(0), StrToInt64("abc"))
}

func TestDateConversions(t *testing.T) {
	d := StrToDate("2024-01-10")
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, "2024-01-10", DateToStr(d))

	assert.True(t, StrToDate("not-a-date").IsZero())
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-01-10"))
	assert.False(t, IsValidDate("2024-13-10"))
	assert.False(t, IsValidDate("10/01/2024"))
	assert.False(t, IsValidDate(""))
}

//完整时间和纯日期两种格式都要能解析
func TestStrToTimeOrDate(t *testing.T) {
	full := StrToTimeOrDate("2024-01-10 08:30:00")
	assert.Equal(t, 8, full.Hour())
	assert.Equal(t, 10, full.Day())

	dateOnly := StrToTimeOrDate("2024-01-10")
	assert.Equal(t, 0, dateOnly.Hour())
	assert.Equal(t, 10, dateOnly.Day())

	assert.True(t, StrToTimeOrDate("garbage").IsZero())
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 45, 0, time.Local)
	s := TimeToStr(now)
	assert.Equal(t, "2024-03-01 12:30:45", s)
	assert.True(t, StrToTimeOrDate(s).Equal(now))
}

func TestStructToMapByJsonTag(t *testing.T) {
	type demo struct {
		Name    string    `json:"name"`
		Count   int       `json:"count"`
		When    time.Time `json:"when"`
		Skipped string    `json:"-"`
	}
	d := &demo{Name: "5A", Count: 3, When: time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local), Skipped: "x"}
	mp := StructToMapByJsonTag(d)
	assert.Equal(t, "5A", mp["name"])
	assert.Equal(t, 3, mp["count"])
	assert.Equal(t, "2024-01-10 00:00:00", mp["when"])
	_, ok := mp["-"]
	assert.False(t, ok)
	_, ok = mp["Skipped"]
	assert.False(t, ok)
}

func TestRandString(t *testing.T) {
	s := RandString(16)
	assert.Len(t, s, 16)
}
