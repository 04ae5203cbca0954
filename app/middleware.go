package app

import (
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
)

//中间件

//验证是否登陆, 用户被删后残留的session一并作废
func AuthLogin(c *gin.Context) {
	id := getUserID(c)
	if id == 0 {
		setError(c, 401, "未登陆")
		c.Abort()
		return
	}
	if !dao.Exists(&dao.UserDao{ID: id}) {
		deleteSession(c)
		setError(c, 401, "未登陆")
		c.Abort()
	}
}

//管理员验证,非管理员不给硬错误,只在包里带上提示
func AuthAdmin(c *gin.Context) {
	id := getUserID(c)
	if id == 0 {
		setError(c, 401, "未登陆")
		c.Abort()
		return
	}
	col := dao.OneCol(&dao.UserDao{ID: id}, "is_admin")
	if col == nil { //用户已不存在
		deleteSession(c)
		setError(c, 401, "未登陆")
		c.Abort()
		return
	}
	if !col.ToBool() {
		setError(c, 403, "没有管理员权限")
		c.Abort()
	}
}

//c中没有返回码, 默认为200,
func jsonResponse(c *gin.Context) {
	c.Next()
	statusCode := c.Writer.Status()
	if statusCode == 404 {
		c.JSON(404, gin.H{"errmsg": "Not Found"})
	} else if _, exist := c.Get("noPack"); !exist {
		delete(c.Keys, "github.com/gin-contrib/sessions")
		c.JSON(200, c.Keys)
	}
}
