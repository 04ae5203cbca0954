package app

import (
	"StudentManagementSystem/common"
	"fmt"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

//路由
func InitRouters() {
	r := setupRouter()
	if err := r.Run(common.ListenAddr); err != nil {
		fmt.Println("路由初始化错误\n", err.Error())
	}
}

func setupRouter() *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(common.SessionSecret)) //启用cookie和session
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   0, //默认随浏览器会话结束,登陆时勾选记住我再延长
		HttpOnly: true,
	})

	r.Use(jsonResponse)
	r.Use(sessions.Sessions("ginSession", store))

	initPublicRouters(r)
	initRecordRouters(r)
	initAdminRouters(r)
	return r
}

//无需登陆的路由
func initPublicRouters(r *gin.Engine) {
	g0 := r.Group("/api")
	{
		g0.GET("ping", ping)
		g0.POST("login", login)
		g0.POST("register", register)
		g0.GET("autologin", autologin)
	}
}

//需要登陆的路由, 所有写操作一律POST
func initRecordRouters(r *gin.Engine) {
	g1 := r.Group("/api")
	g1.Use(AuthLogin) //登陆验证中间件
	{
		g1.GET("logout", logout)
		g1.GET("index", index)

		//student
		g1.GET("getStudents", getStudents)
		g1.GET("getOneStudent", getOneStudent)
		g1.POST("addStudent", addStudent)
		g1.POST("updateStudent", updateStudent)
		g1.POST("deleteStudent", deleteStudent)
		g1.GET("searchStudents", searchStudents)

		//class
		g1.GET("getClasses", getClasses)
		g1.GET("getOneClass", getOneClass)
		g1.POST("addClass", addClass)
		g1.POST("updateClass", updateClass)
		g1.POST("deleteClass", deleteClass)

		//grade
		g1.GET("getGrades", getGrades)
		g1.GET("getOneGrade", getOneGrade)
		g1.POST("addGrade", addGrade)
		g1.POST("updateGrade", updateGrade)
		g1.POST("deleteGrade", deleteGrade)

		//attendance
		g1.GET("getAttendances", getAttendances)
		g1.GET("getOneAttendance", getOneAttendance)
		g1.POST("addAttendance", addAttendance)
		g1.POST("updateAttendance", updateAttendance)
		g1.POST("deleteAttendance", deleteAttendance)
	}
}

//用户管理,管理员才能进
func initAdminRouters(R *gin.Engine) {
	g := R.Group("/api", AuthLogin, AuthAdmin)
	{
		g.GET("getUsers", getUsers)
		g.POST("addUser", addUser)
		g.POST("deleteUser", deleteUser)
	}
}
