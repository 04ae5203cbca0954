package dao

import (
	"StudentManagementSystem/model"
	"github.com/go-redis/redis/v8"
	"strconv"
	"time"
)

const (
	ATTENDANCE_REDIS_EXPIRE = time.Hour * 5
	ATTENDANCE_ZSET_EXPIRE  = time.Hour * 5
)

/*
	每个学生一个zset: 考勤id按日期倒序, 懒加载
*/

type Attendance = model.Attendance

type AttendanceDao struct {
	ID         int64
	Attendance *Attendance
}

func (ad *AttendanceDao) GetRedisExpire() time.Duration {
	return ATTENDANCE_REDIS_EXPIRE
}
func (ad *AttendanceDao) GetTableName() string {
	return "attendance"
}
func (ad *AttendanceDao) GetSelf() interface{} {
	if ad.Attendance == nil {
		ad.Attendance = &Attendance{}
	}
	return ad.Attendance
}
func (ad *AttendanceDao) GetID() int64 {
	if ad.ID == 0 {
		if ad.Attendance != nil {
			ad.ID = ad.Attendance.ID
		}
	}
	return ad.ID
}
func (ad *AttendanceDao) GetRedisKey() string {
	return ad.GetTableName() + "_" + strconv.FormatInt(ad.GetID(), 10)
}
func (ad *AttendanceDao) BeforePutToRedis() error {
	return nil
}
func (ad *AttendanceDao) BeforeDelete() error {
	DelAttendanceZSet(OneCol(ad, "student_id").ToInt64())
	return nil
}

func (ad *AttendanceDao) Create() error {
	if err := Create(ad); err != nil {
		return err
	}
	DelAttendanceZSet(ad.Attendance.StudentID)
	return nil
}
func (ad *AttendanceDao) Delete() error {
	return Delete(ad)
}
func (ad *AttendanceDao) Update(mp map[string]interface{}) error {
	oldStudent := OneCol(ad, "student_id").ToInt64()
	if err := UpdateCols(ad, mp); err != nil {
		return err
	}
	DelAttendanceZSet(oldStudent)
	if sid, ok := mp["student_id"]; ok {
		DelAttendanceZSet(sid.(int64))
	}
	return nil
}

func getAttendanceZSetKey(studentID int64) string {
	return "attendance_zset_" + strconv.FormatInt(studentID, 10)
}

func DelAttendanceZSet(studentID int64) {
	rdb.Del(ctx, getAttendanceZSetKey(studentID))
}

//某学生考勤id按日期倒序,不在redis则从mysql重建
func getAttendanceZSet(studentID int64) []int64 {
	key := getAttendanceZSetKey(studentID)
	if rdb.Exists(ctx, key).Val() <= 0 {
		atts := make([]Attendance, 0)
		if err := engine.Table("attendance").Where("student_id = ?", studentID).Cols("id", "date").Find(&atts); err != nil {
			return nil
		}
		if len(atts) == 0 {
			return []int64{}
		}
		zs := make([]*redis.Z, len(atts))
		for i, item := range atts {
			zs[i] = &redis.Z{Score: float64(-item.Date.Unix()), Member: item.ID}
		}
		rdb.ZAdd(ctx, key, zs...)
		rdb.Expire(ctx, key, ATTENDANCE_ZSET_EXPIRE)
	}
	x := rdb.ZRange(ctx, key, 0, -1).Val()
	ids := make([]int64, len(x))
	for i, item := range x {
		ids[i], _ = strconv.ParseInt(item, 10, 64)
	}
	return ids
}

//某学生最近n条考勤,按日期倒序
func GetRecentAttendancesOfStudent(studentID int64, n int) []Attendance {
	ids := getAttendanceZSet(studentID)
	if len(ids) > n {
		ids = ids[:n]
	}
	ret := make([]Attendance, 0, len(ids))
	for _, id := range ids {
		ad := &AttendanceDao{ID: id}
		if GetSelfAll(ad) == nil {
			ret = append(ret, *ad.Attendance)
		}
	}
	return ret
}

func CountAttendancesOfStudent(studentID int64) int {
	cnt, _ := engine.Table("attendance").Where("student_id = ?", studentID).Count()
	return int(cnt)
}

//查某学生某天的考勤记录id,没有返回0
func FindAttendanceID(studentID int64, date string) int64 {
	x := new(Col)
	if ok, err := engine.SQL("select id from attendance where student_id = ? and date = ?", studentID, date).Get(&x.data); err == nil && ok {
		return x.ToInt64()
	}
	return 0
}

//全部考勤记录,按日期倒序
func GetAttendances() []Attendance {
	ret := make([]Attendance, 0)
	engine.Desc("date").Find(&ret)
	return ret
}
