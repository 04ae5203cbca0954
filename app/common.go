package app

import (
	"github.com/gin-gonic/gin"
)

func setError(c *gin.Context, errno int, errmsg string) {
	c.Set("errno", errno)
	c.Set("errmsg", errmsg)
	c.Set("severity", "danger")
}

//操作成功的提示消息
func setMsg(c *gin.Context, msg string) {
	c.Set("msg", msg)
	c.Set("severity", "success")
}

func setMap(c *gin.Context, mp map[string]interface{}) {
	for k, v := range mp {
		c.Set(k, v)
	}
}
