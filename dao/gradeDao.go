package dao

import (
	"StudentManagementSystem/model"
	"strconv"
	"time"
)

const (
	GRADE_REDIS_EXPIRE = time.Hour * 5
)

type Grade = model.Grade

type GradeDao struct {
	ID    int64
	Grade *Grade
}

func (gd *GradeDao) GetRedisExpire() time.Duration {
	return GRADE_REDIS_EXPIRE
}
func (gd *GradeDao) GetTableName() string {
	return "grade"
}
func (gd *GradeDao) GetSelf() interface{} {
	if gd.Grade == nil {
		gd.Grade = &Grade{}
	}
	return gd.Grade
}
func (gd *GradeDao) GetID() int64 {
	if gd.ID == 0 {
		if gd.Grade != nil {
			gd.ID = gd.Grade.ID
		}
	}
	return gd.ID
}
func (gd *GradeDao) GetRedisKey() string {
	return gd.GetTableName() + "_" + strconv.FormatInt(gd.GetID(), 10)
}
func (gd *GradeDao) BeforePutToRedis() error {
	return nil
}
func (gd *GradeDao) BeforeDelete() error {
	return nil
}

func (gd *GradeDao) Create() error {
	return Create(gd)
}
func (gd *GradeDao) Delete() error {
	return Delete(gd)
}
func (gd *GradeDao) Update(mp map[string]interface{}) error {
	return UpdateCols(gd, mp)
}

func GetGrades() []Grade {
	ret := make([]Grade, 0)
	engine.Asc("id").Find(&ret)
	return ret
}

func GetGradesOfStudent(studentID int64) []Grade {
	ret := make([]Grade, 0)
	engine.Where("student_id = ?", studentID).Asc("id").Find(&ret)
	return ret
}

func CountGradesOfStudent(studentID int64) int {
	cnt, _ := engine.Table("grade").Where("student_id = ?", studentID).Count()
	return int(cnt)
}
