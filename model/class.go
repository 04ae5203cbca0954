package model

import "time"

//班级,一个班级下有多个学生
type Class struct {
	ID          int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt   time.Time `json:"created_at" xorm:"created"`
	Name        string    `json:"name" xorm:"varchar(50) unique index notnull"` //班级名
	Description string    `json:"description" xorm:"text"`                      //班级描述
}
