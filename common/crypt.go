package common

import (
	"golang.org/x/crypto/bcrypt"
)

//用户密码一律存bcrypt哈希,盐包含在哈希串内

//对明文密码做bcrypt哈希
func HashPassword(pwd string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

//校验明文密码与哈希是否匹配,内部是常数时间比较
func VerifyPassword(pwd, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}
