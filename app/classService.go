package app

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
)

func getClasses(c *gin.Context) {
	c.Set("data", dao.GetClasses())
	c.Set("total", dao.CountClasses())
}

//班级详情: 班级信息和班内学生
func getOneClass(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	cd := &dao.ClassDao{ID: id}
	if id == 0 || dao.GetSelfAll(cd) != nil {
		setError(c, 404, "班级不存在")
		return
	}
	c.Set("class", common.StructToMapByJsonTag(cd.Class))
	c.Set("students", dao.GetStudentsOfClass(id))
}

func addClass(c *gin.Context) {
	form := new(classValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if dao.CountClassesByNameExcept(form.Name, 0) > 0 {
		setError(c, 403, "班级名已存在")
		return
	}
	cd := &dao.ClassDao{
		Class: &dao.Class{
			Name:        form.Name,
			Description: form.Description,
		},
	}
	if err := cd.Create(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "班级添加成功")
}

//改名时查重要排除自己
func updateClass(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	cd := &dao.ClassDao{ID: id}
	if id == 0 || !dao.Exists(cd) {
		setError(c, 404, "班级不存在")
		return
	}
	form := new(classValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if dao.CountClassesByNameExcept(form.Name, id) > 0 {
		setError(c, 403, "班级名已存在")
		return
	}
	mp := common.H{
		"name":        form.Name,
		"description": form.Description,
	}
	if err := cd.Update(mp); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "班级修改成功")
}

//班里还有学生就不允许删除
func deleteClass(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	cd := &dao.ClassDao{ID: id}
	if id == 0 || !dao.Exists(cd) {
		setError(c, 404, "班级不存在")
		return
	}
	if dao.CountStudentsOfClass(id) > 0 {
		setError(c, 403, "班级内还有学生,不能删除")
		return
	}
	if err := cd.Delete(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "班级已删除")
}
