package dao

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/model"
	"github.com/go-redis/redis/v8"
	"strconv"
	"time"
)

const (
	STUDENT_REDIS_EXPIRE = 0 //学生不过期
	STUDENT_ZSET_KEY     = "student_zset(id)"
	STUDENT_HASH_KEY     = "student_hash(code:id)"
)

/*
	student_zset: id 按创建顺序
	student_hash: 学号:id
*/

type Student = model.Student

type StudentDao struct {
	ID        int64
	StudentID string //学号
	Student   *Student
}

func studentInitRedis() {
	students := make([]Student, 0)
	engine.Find(&students)
	for i := range students {
		sd := &StudentDao{Student: &students[i]}
		PutToRedis(sd)
	}
}

func (sd *StudentDao) GetRedisExpire() time.Duration {
	return STUDENT_REDIS_EXPIRE
}
func (sd *StudentDao) GetTableName() string {
	return "student"
}
func (sd *StudentDao) GetSelf() interface{} {
	if sd.Student == nil {
		sd.Student = &Student{}
	}
	return sd.Student
}
func (sd *StudentDao) GetCode() string { //学号
	if sd.StudentID == "" {
		if sd.Student != nil && sd.Student.StudentID != "" {
			sd.StudentID = sd.Student.StudentID
		} else {
			sd.StudentID = OneCol(sd, "student_id").ToString()
		}
	}
	return sd.StudentID
}
func (sd *StudentDao) GetRedisKey() string { //必须有id
	return sd.GetTableName() + "_" + strconv.FormatInt(sd.GetID(), 10)
}
func (sd *StudentDao) GetID() int64 {
	if sd.ID == 0 {
		if sd.Student != nil && sd.Student.ID != 0 {
			sd.ID = sd.Student.ID
		} else {
			code := sd.StudentID
			if code == "" && sd.Student != nil {
				code = sd.Student.StudentID
			}
			if code != "" {
				if rdb.HExists(ctx, STUDENT_HASH_KEY, code).Val() {
					sd.ID = common.StrToInt64(rdb.HGet(ctx, STUDENT_HASH_KEY, code).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from student where student_id = ?", code).Get(&x.data); err == nil && ok {
						sd.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return sd.ID
}

func (sd *StudentDao) BeforePutToRedis() error {
	rdb.ZAdd(ctx, STUDENT_ZSET_KEY, &redis.Z{
		Score:  float64(sd.GetID()),
		Member: sd.GetID(),
	})
	rdb.HSet(ctx, STUDENT_HASH_KEY, sd.GetCode(), sd.GetID())
	return nil
}

func (sd *StudentDao) BeforeDelete() error {
	rdb.ZRem(ctx, STUDENT_ZSET_KEY, sd.GetID())
	rdb.HDel(ctx, STUDENT_HASH_KEY, sd.GetCode())
	DelAttendanceZSet(sd.GetID())
	return nil
}

func (sd *StudentDao) Create() error {
	return Create(sd)
}
func (sd *StudentDao) Delete() error {
	return Delete(sd)
}

func (sd *StudentDao) Update(mp map[string]interface{}) error {
	oldCode := sd.GetCode()
	if err := UpdateCols(sd, mp); err != nil {
		return err
	}
	if newCode, ok := mp["student_id"]; ok && newCode.(string) != oldCode {
		rdb.HDel(ctx, STUDENT_HASH_KEY, oldCode)
		sd.StudentID = newCode.(string)
		sd.BeforePutToRedis()
	}
	return nil
}

func CountStudents() int64 {
	return rdb.ZCount(ctx, STUDENT_ZSET_KEY, "-inf", "+inf").Val()
}

func GetStudents() []Student {
	ret := make([]Student, 0)
	engine.Asc("id").Find(&ret)
	return ret
}

//学号查重,except为要排除的记录id(新建时传0)
func CountStudentsByCodeExcept(code string, except int64) int {
	cnt, _ := engine.Table("student").Where("student_id = ? and id <> ?", code, except).Count()
	return int(cnt)
}

func GetStudentsOfClass(classID int64) []Student {
	ret := make([]Student, 0)
	engine.Where("class_id = ?", classID).Asc("id").Find(&ret)
	return ret
}

func CountStudentsOfClass(classID int64) int {
	cnt, _ := engine.Table("student").Where("class_id = ?", classID).Count()
	return int(cnt)
}

//按姓名/学号/班级名模糊搜索,空串直接返回空列表
//mysql默认排序规则下like不区分大小写
func SearchStudents(term string) []Student {
	ret := make([]Student, 0)
	if term == "" {
		return ret
	}
	pattern := "%" + term + "%"
	engine.Where("first_name like ? or last_name like ? or student_id like ? or class_id in (select id from class where name like ?)",
		pattern, pattern, pattern, pattern).Asc("id").Find(&ret)
	return ret
}
