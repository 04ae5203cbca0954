package common

import (
	"errors"
)

type H = map[string]interface{}

var (
	ListenAddr    string //服务监听地址
	SessionSecret string //cookie session 的签名密钥
)

func Init(cfg H) error {
	var ok bool
	ListenAddr, ok = cfg["address"].(string)
	if !ok {
		return errors.New("监听地址加载错误")
	}
	SessionSecret, ok = cfg["session_secret"].(string)
	if !ok || SessionSecret == "" {
		return errors.New("session密钥加载错误")
	}
	return nil
}
