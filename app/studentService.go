package app

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
)

func getStudents(c *gin.Context) {
	c.Set("data", dao.GetStudents())
	c.Set("total", dao.CountStudents())
}

func studentToMap(s *dao.Student) common.H {
	return common.H{
		"id":            s.ID,
		"created_at":    common.TimeToStr(s.CreatedAt),
		"student_id":    s.StudentID,
		"first_name":    s.FirstName,
		"last_name":     s.LastName,
		"gender":        s.Gender,
		"date_of_birth": common.DateToStr(s.DateOfBirth),
		"address":       s.Address,
		"phone":         s.Phone,
		"email":         s.Email,
		"class_id":      s.ClassID,
	}
}

//学生详情: 学生信息+全部成绩+最近10条考勤(按日期倒序)
func getOneStudent(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	sd := &dao.StudentDao{ID: id}
	if id == 0 || dao.GetSelfAll(sd) != nil {
		setError(c, 404, "学生不存在")
		return
	}
	attendances := dao.GetRecentAttendancesOfStudent(id, 10)
	attData := make([]common.H, len(attendances))
	for i, a := range attendances {
		attData[i] = common.H{
			"id":         a.ID,
			"date":       common.DateToStr(a.Date),
			"status":     a.Status,
			"notes":      a.Notes,
			"student_id": a.StudentID,
		}
	}
	setMap(c, common.H{
		"student":     studentToMap(sd.Student),
		"grades":      dao.GetGradesOfStudent(id),
		"attendances": attData,
	})
}

//表单内容检查通过后,学号查重,班级必须存在
func checkStudentForm(c *gin.Context, except int64) *studentValidtor {
	form := new(studentValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return nil
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return nil
	}
	if dao.CountStudentsByCodeExcept(form.StudentID, except) > 0 {
		setError(c, 403, "学号已存在")
		return nil
	}
	if !dao.Exists(&dao.ClassDao{ID: form.ClassID}) {
		setError(c, 404, "班级不存在")
		return nil
	}
	return form
}

func addStudent(c *gin.Context) {
	form := checkStudentForm(c, 0)
	if form == nil {
		return
	}
	sd := &dao.StudentDao{
		Student: &dao.Student{
			StudentID:   form.StudentID,
			FirstName:   form.FirstName,
			LastName:    form.LastName,
			Gender:      form.Gender,
			DateOfBirth: common.StrToDate(form.DateOfBirth),
			Address:     form.Address,
			Phone:       form.Phone,
			Email:       form.Email,
			ClassID:     form.ClassID,
		},
	}
	if err := sd.Create(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "学生添加成功")
}

func updateStudent(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	sd := &dao.StudentDao{ID: id}
	if id == 0 || !dao.Exists(sd) {
		setError(c, 404, "学生不存在")
		return
	}
	form := checkStudentForm(c, id)
	if form == nil {
		return
	}
	mp := common.H{
		"student_id":    form.StudentID,
		"first_name":    form.FirstName,
		"last_name":     form.LastName,
		"gender":        form.Gender,
		"date_of_birth": common.StrToDate(form.DateOfBirth),
		"address":       form.Address,
		"phone":         form.Phone,
		"email":         form.Email,
		"class_id":      form.ClassID,
	}
	if err := sd.Update(mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "学生修改成功")
}

//还有成绩或考勤记录的学生不允许删除
func deleteStudent(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	sd := &dao.StudentDao{ID: id}
	if id == 0 || !dao.Exists(sd) {
		setError(c, 404, "学生不存在")
		return
	}
	if dao.CountGradesOfStudent(id) > 0 || dao.CountAttendancesOfStudent(id) > 0 {
		setError(c, 403, "该学生还有成绩或考勤记录,不能删除")
		return
	}
	if err := sd.Delete(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "学生已删除")
}

//按姓名/学号/班级名搜索,关键字为空返回空列表
func searchStudents(c *gin.Context) {
	term := c.DefaultQuery("term", "")
	students := dao.SearchStudents(term)
	c.Set("data", students)
	c.Set("total", len(students))
}
