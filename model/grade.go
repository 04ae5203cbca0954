package model

import "time"

//成绩,同一学生同一科目同一学期可以有多条(允许补考/重修)
type Grade struct {
	ID           int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt    time.Time `json:"created_at" xorm:"created"`
	StudentID    int64     `json:"student_id" xorm:"index notnull"`          //所属学生(数据库id)
	Subject      string    `json:"subject" xorm:"varchar(50) notnull"`       //科目
	Score        float64   `json:"score" xorm:"notnull"`                     //分数
	Grade        string    `json:"grade" xorm:"varchar(10)"`                 //等级,如A/B+
	Semester     string    `json:"semester" xorm:"varchar(20) notnull"`      //学期: 1st或2nd
	AcademicYear string    `json:"academic_year" xorm:"varchar(20) notnull"` //学年
}
