package model

import "time"

//考勤记录,同一学生同一天至多一条,由联合唯一索引兜底
type Attendance struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	StudentID int64     `json:"student_id" xorm:"notnull unique(student_date)"` //所属学生(数据库id)
	Date      time.Time `json:"date" xorm:"DATE notnull unique(student_date)"`  //考勤日期
	Status    string    `json:"status" xorm:"varchar(10) notnull"`              //present/absent/late/excused
	Notes     string    `json:"notes" xorm:"text"`                              //备注
}
