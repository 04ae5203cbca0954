package app

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
)

func getGrades(c *gin.Context) {
	grades := dao.GetGrades()
	c.Set("data", grades)
	c.Set("total", len(grades))
}

func getOneGrade(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	gd := &dao.GradeDao{ID: id}
	if id == 0 || dao.GetSelfAll(gd) != nil {
		setError(c, 404, "成绩不存在")
		return
	}
	c.Set("grade", common.StructToMapByJsonTag(gd.Grade))
}

//成绩不查重,同一学生同一科目允许多条
func checkGradeForm(c *gin.Context) *gradeValidtor {
	form := new(gradeValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return nil
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return nil
	}
	if !dao.Exists(&dao.StudentDao{ID: form.StudentID}) {
		setError(c, 404, "学生不存在")
		return nil
	}
	return form
}

func addGrade(c *gin.Context) {
	form := checkGradeForm(c)
	if form == nil {
		return
	}
	gd := &dao.GradeDao{
		Grade: &dao.Grade{
			StudentID:    form.StudentID,
			Subject:      form.Subject,
			Score:        form.Score,
			Grade:        form.Grade,
			Semester:     form.Semester,
			AcademicYear: form.AcademicYear,
		},
	}
	if err := gd.Create(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "成绩添加成功")
}

func updateGrade(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	gd := &dao.GradeDao{ID: id}
	if id == 0 || !dao.Exists(gd) {
		setError(c, 404, "成绩不存在")
		return
	}
	form := checkGradeForm(c)
	if form == nil {
		return
	}
	mp := common.H{
		"student_id":    form.StudentID,
		"subject":       form.Subject,
		"score":         form.Score,
		"grade":         form.Grade,
		"semester":      form.Semester,
		"academic_year": form.AcademicYear,
	}
	if err := gd.Update(mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "成绩修改成功")
}

//成绩删除没有前置约束
func deleteGrade(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	gd := &dao.GradeDao{ID: id}
	if id == 0 || !dao.Exists(gd) {
		setError(c, 404, "成绩不存在")
		return
	}
	if err := gd.Delete(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "成绩已删除")
}
