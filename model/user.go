package model

import (
	"time"
)

type User struct {
	ID int64 `json:"id" xorm:"pk autoincr"`
	//基础信息
	CreatedAt time.Time `json:"created_at" xorm:"created"`                          //创建时间
	Username  string    `json:"username" xorm:"VARBINARY(64) unique index notnull"` //用户名
	Password  string    `json:"password" xorm:"varchar(100) notnull"`               //bcrypt哈希后的密码
	Email     string    `json:"email"  xorm:"varchar(100) unique index notnull"`    //邮箱
	FirstName string    `json:"first_name" xorm:"varchar(50)"`                      //名
	LastName  string    `json:"last_name" xorm:"varchar(50)"`                       //姓
	IsAdmin   bool      `json:"is_admin"`                                           //是否是管理员,管理员能管理用户
}
