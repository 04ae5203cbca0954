package model

import "time"

//学生,属于一个班级,下挂成绩和考勤记录
type Student struct {
	ID          int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt   time.Time `json:"created_at" xorm:"created"`
	StudentID   string    `json:"student_id" xorm:"varchar(20) unique index notnull"` //学号,区别于数据库id
	FirstName   string    `json:"first_name" xorm:"varchar(50) notnull"`              //名
	LastName    string    `json:"last_name" xorm:"varchar(50) notnull"`               //姓
	Gender      string    `json:"gender" xorm:"varchar(10)"`                          //性别
	DateOfBirth time.Time `json:"date_of_birth" xorm:"DATE"`                          //出生日期
	Address     string    `json:"address" xorm:"text"`                                //住址
	Phone       string    `json:"phone" xorm:"varchar(20)"`                           //电话
	Email       string    `json:"email" xorm:"varchar(100)"`                          //邮箱
	ClassID     int64     `json:"class_id" xorm:"index notnull"`                      //所属班级
}
