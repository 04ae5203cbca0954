package app

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
	"time"
)

func attendanceToMap(a *dao.Attendance) common.H {
	return common.H{
		"id":         a.ID,
		"created_at": common.TimeToStr(a.CreatedAt),
		"student_id": a.StudentID,
		"date":       common.DateToStr(a.Date),
		"status":     a.Status,
		"notes":      a.Notes,
	}
}

//全部考勤,按日期倒序
func getAttendances(c *gin.Context) {
	attendances := dao.GetAttendances()
	data := make([]common.H, len(attendances))
	for i := range attendances {
		data[i] = attendanceToMap(&attendances[i])
	}
	c.Set("data", data)
	c.Set("total", len(attendances))
}

func getOneAttendance(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	ad := &dao.AttendanceDao{ID: id}
	if id == 0 || dao.GetSelfAll(ad) != nil {
		setError(c, 404, "考勤记录不存在")
		return
	}
	c.Set("attendance", attendanceToMap(ad.Attendance))
}

//日期为空时默认今天, except为查重时要排除的记录id
func checkAttendanceForm(c *gin.Context, except int64) *attendanceValidtor {
	form := new(attendanceValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return nil
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return nil
	}
	if form.Date == "" {
		form.Date = common.DateToStr(time.Now())
	}
	if !dao.Exists(&dao.StudentDao{ID: form.StudentID}) {
		setError(c, 404, "学生不存在")
		return nil
	}
	if existing := dao.FindAttendanceID(form.StudentID, form.Date); existing != 0 && existing != except {
		setError(c, 403, "该学生当天已有考勤记录")
		return nil
	}
	return form
}

func addAttendance(c *gin.Context) {
	form := checkAttendanceForm(c, 0)
	if form == nil {
		return
	}
	ad := &dao.AttendanceDao{
		Attendance: &dao.Attendance{
			StudentID: form.StudentID,
			Date:      common.StrToDate(form.Date),
			Status:    form.Status,
			Notes:     form.Notes,
		},
	}
	if err := ad.Create(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "考勤添加成功")
}

func updateAttendance(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	ad := &dao.AttendanceDao{ID: id}
	if id == 0 || !dao.Exists(ad) {
		setError(c, 404, "考勤记录不存在")
		return
	}
	form := checkAttendanceForm(c, id)
	if form == nil {
		return
	}
	mp := common.H{
		"student_id": form.StudentID,
		"date":       common.StrToDate(form.Date),
		"status":     form.Status,
		"notes":      form.Notes,
	}
	if err := ad.Update(mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "考勤修改成功")
}

func deleteAttendance(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	ad := &dao.AttendanceDao{ID: id}
	if id == 0 || !dao.Exists(ad) {
		setError(c, 404, "考勤记录不存在")
		return
	}
	if err := ad.Delete(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "考勤已删除")
}
