package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginValidtor(t *testing.T) {
	cases := []struct {
		name string
		form loginValidtor
		ok   bool
	}{
		{"合法", loginValidtor{Username: "alice", Password: "secret123"}, true},
		{"用户名为空", loginValidtor{Username: "", Password: "secret123"}, false},
		{"用户名太短", loginValidtor{Username: "a", Password: "secret123"}, false},
		{"密码为空", loginValidtor{Username: "alice", Password: ""}, false},
		{"用户名带空格", loginValidtor{Username: "ali ce", Password: "secret123"}, false},
		{"密码带换行", loginValidtor{Username: "alice", Password: "sec\nret"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, _ := tc.form.isOk()
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestRegisterValidtor(t *testing.T) {
	good := registerValidtor{
		Username:        "alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Email:           "alice@school.edu",
		FirstName:       "Alice",
		LastName:        "Wang",
	}
	ok, msg := good.isOk()
	assert.True(t, ok, msg)

	cases := []struct {
		name   string
		mutate func(*registerValidtor)
	}{
		{"两次密码不一致", func(r *registerValidtor) { r.ConfirmPassword = "secret124" }},
		{"邮箱非法", func(r *registerValidtor) { r.Email = "not-an-email" }},
		{"密码太短", func(r *registerValidtor) { r.Password = "abc"; r.ConfirmPassword = "abc" }},
		{"密码太长", func(r *registerValidtor) {
			r.Password = "01234567890123456789"
			r.ConfirmPassword = r.Password
		}},
		{"缺少名", func(r *registerValidtor) { r.FirstName = "" }},
		{"缺少姓", func(r *registerValidtor) { r.LastName = "" }},
		{"用户名带空格", func(r *registerValidtor) { r.Username = "a lice" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := good
			tc.mutate(&form)
			ok, _ := form.isOk()
			assert.False(t, ok)
		})
	}
}

func TestClassValidtor(t *testing.T) {
	ok, _ := (&classValidtor{Name: "5A", Description: "五年级一班"}).isOk()
	assert.True(t, ok)

	ok, _ = (&classValidtor{Name: "", Description: "x"}).isOk()
	assert.False(t, ok)

	ok, _ = (&classValidtor{Name: "5A"}).isOk() //描述可以为空
	assert.True(t, ok)
}

func TestStudentValidtor(t *testing.T) {
	good := studentValidtor{
		StudentID:   "S001",
		FirstName:   "Ming",
		LastName:    "Li",
		Gender:      "Male",
		DateOfBirth: "2010-09-01",
		ClassID:     1,
	}
	ok, msg := good.isOk()
	assert.True(t, ok, msg)

	cases := []struct {
		name   string
		mutate func(*studentValidtor)
	}{
		{"学号为空", func(s *studentValidtor) { s.StudentID = "" }},
		{"学号太短", func(s *studentValidtor) { s.StudentID = "S" }},
		{"学号带空格", func(s *studentValidtor) { s.StudentID = "S 01" }},
		{"性别非法", func(s *studentValidtor) { s.Gender = "Other" }},
		{"出生日期非法", func(s *studentValidtor) { s.DateOfBirth = "01/09/2010" }},
		{"出生日期为空", func(s *studentValidtor) { s.DateOfBirth = "" }},
		{"缺少班级", func(s *studentValidtor) { s.ClassID = 0 }},
		{"邮箱非法", func(s *studentValidtor) { s.Email = "bad-email" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := good
			tc.mutate(&form)
			ok, _ := form.isOk()
			assert.False(t, ok)
		})
	}

	//邮箱和电话可以为空
	form := good
	form.Email = ""
	form.Phone = ""
	ok, _ = form.isOk()
	assert.True(t, ok)
}

func TestGradeValidtor(t *testing.T) {
	good := gradeValidtor{
		StudentID:    1,
		Subject:      "Math",
		Score:        95.5,
		Grade:        "A",
		Semester:     "1st",
		AcademicYear: "2023-2024",
	}
	ok, msg := good.isOk()
	assert.True(t, ok, msg)

	t.Run("学期只能是1st或2nd", func(t *testing.T) {
		form := good
		form.Semester = "3rd"
		ok, _ := form.isOk()
		assert.False(t, ok)

		form.Semester = "2nd"
		ok, _ = form.isOk()
		assert.True(t, ok)
	})
	t.Run("分数越界", func(t *testing.T) {
		form := good
		form.Score = 101
		ok, _ := form.isOk()
		assert.False(t, ok)
	})
	t.Run("缺少学生", func(t *testing.T) {
		form := good
		form.StudentID = 0
		ok, _ := form.isOk()
		assert.False(t, ok)
	})
	t.Run("等级可以为空", func(t *testing.T) {
		form := good
		form.Grade = ""
		ok, _ := form.isOk()
		assert.True(t, ok)
	})
}

func TestAttendanceValidtor(t *testing.T) {
	good := attendanceValidtor{
		StudentID: 1,
		Date:      "2024-01-10",
		Status:    "present",
	}
	ok, msg := good.isOk()
	assert.True(t, ok, msg)

	t.Run("状态枚举", func(t *testing.T) {
		for _, s := range []string{"present", "absent", "late", "excused"} {
			form := good
			form.Status = s
			ok, _ := form.isOk()
			assert.True(t, ok, s)
		}
		form := good
		form.Status = "holiday"
		ok, _ := form.isOk()
		assert.False(t, ok)
	})
	t.Run("日期为空交给服务端默认今天", func(t *testing.T) {
		form := good
		form.Date = ""
		ok, _ := form.isOk()
		assert.True(t, ok)
	})
	t.Run("日期非法", func(t *testing.T) {
		form := good
		form.Date = "2024/01/10"
		ok, _ := form.isOk()
		assert.False(t, ok)
	})
}
