package app

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/dao"
	"github.com/gin-gonic/gin"
)

func ping(c *gin.Context) {
	c.Set("ping", "pong")
}

//根据session探测当前身份
func autologin(c *gin.Context) {
	id := getUserID(c)
	if id != 0 {
		ud := &dao.UserDao{ID: id}
		cols := dao.Cols(ud, "first_name", "last_name", "is_admin")
		if cols == nil { //用户已被删除,session作废
			deleteSession(c)
			setError(c, 401, "未登录")
			return
		}
		c.Set("username", getUserName(c))
		c.Set("first_name", cols[0].ToString())
		c.Set("last_name", cols[1].ToString())
		c.Set("is_admin", cols[2].ToBool())
		return
	}
	setError(c, 401, "未登录")
}

//登陆请求, 用户不存在和密码错误给同一个提示
func login(c *gin.Context) {
	if isLogin(c) {
		deleteSession(c)
	}
	form := new(loginValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	ud := &dao.UserDao{Username: form.Username}
	id := ud.GetID()
	if id <= 0 {
		setError(c, 403, "用户名或密码错误")
		return
	}
	if pwd := dao.OneCol(ud, "password").ToString(); !common.VerifyPassword(form.Password, pwd) {
		setError(c, 403, "用户名或密码错误")
		return
	}
	if !dao.IsInRedis(ud) {
		dao.GetSelfAll(ud)
		dao.PutToRedis(ud)
	}
	setSession(c, ud.Username, ud.GetID(), form.Remember)
	autologin(c)
}

func logout(c *gin.Context) {
	deleteSession(c)
	setMsg(c, "退出成功")
}

//注册请求, 成功后不自动登陆,回登陆页
func register(c *gin.Context) {
	if isLogin(c) {
		setError(c, 403, "请先退出当前账户")
		return
	}
	if createUser(c) {
		setMsg(c, "注册成功,请登录")
	}
}

//管理员代建用户
func addUser(c *gin.Context) {
	if createUser(c) {
		setMsg(c, "用户创建成功")
	}
}

//注册和代建的公共部分, 用户名和邮箱分别查重并注明出错的字段
func createUser(c *gin.Context) bool {
	form := new(registerValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return false
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return false
	}
	if dao.Count(new(dao.UsersData), []string{"username"}, []interface{}{form.Username}) > 0 {
		setError(c, 403, "用户名已存在")
		c.Set("field", "username")
		return false
	}
	if dao.Count(new(dao.UsersData), []string{"email"}, []interface{}{form.Email}) > 0 {
		setError(c, 403, "邮箱已被注册")
		c.Set("field", "email")
		return false
	}
	hash, err := common.HashPassword(form.Password)
	if err != nil {
		setError(c, 500, err.Error())
		return false
	}
	ud := &dao.UserDao{
		User: &dao.User{
			Username:  form.Username,
			Password:  hash,
			Email:     form.Email,
			FirstName: form.FirstName,
			LastName:  form.LastName,
		},
	}
	if err := ud.Create(); err != nil {
		setError(c, 500, err.Error())
		return false
	}
	return true
}

//首页的统计数字
func index(c *gin.Context) {
	c.Set("total_students", dao.CountStudents())
	c.Set("total_classes", dao.CountClasses())
	c.Set("total_users", dao.CountUsers())
}

//用户列表,不带密码哈希
func getUsers(c *gin.Context) {
	users := dao.GetUsers([]string{"id", "created_at", "username", "email", "first_name", "last_name", "is_admin"})
	data := make([]common.H, len(users))
	for i, u := range users {
		data[i] = common.H{
			"id":         u.ID,
			"created_at": common.TimeToStr(u.CreatedAt),
			"username":   u.Username,
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"is_admin":   u.IsAdmin,
		}
	}
	c.Set("data", data)
	c.Set("total", dao.CountUsers())
}

//删除用户,不能删除自己
func deleteUser(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	ud := &dao.UserDao{ID: id}
	if id == 0 || !dao.Exists(ud) {
		setError(c, 404, "用户不存在")
		return
	}
	if id == getUserID(c) {
		setError(c, 403, "不能删除自己的账户")
		return
	}
	if err := ud.Delete(); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setMsg(c, "用户已删除")
}
