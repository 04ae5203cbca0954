package dao

import (
	"StudentManagementSystem/common"
	"StudentManagementSystem/model"
	"github.com/go-redis/redis/v8"
	"strconv"
	"time"
)

const (
	CLASS_REDIS_EXPIRE = 0 //班级不过期
	CLASS_ZSET_KEY     = "class_zset(id)"
	CLASS_HASH_KEY     = "class_hash(name:id)"
)

type Class = model.Class

type ClassDao struct {
	ID    int64
	Name  string
	Class *Class
}

func classInitRedis() {
	classes := make([]Class, 0)
	engine.Find(&classes)
	for i := range classes {
		cd := &ClassDao{Class: &classes[i]}
		PutToRedis(cd)
	}
}

func (cd *ClassDao) GetRedisExpire() time.Duration {
	return CLASS_REDIS_EXPIRE
}
func (cd *ClassDao) GetTableName() string {
	return "class"
}
func (cd *ClassDao) GetSelf() interface{} {
	if cd.Class == nil {
		cd.Class = &Class{}
	}
	return cd.Class
}
func (cd *ClassDao) GetName() string {
	if cd.Name == "" {
		if cd.Class != nil && cd.Class.Name != "" {
			cd.Name = cd.Class.Name
		} else {
			cd.Name = OneCol(cd, "name").ToString()
		}
	}
	return cd.Name
}
func (cd *ClassDao) GetRedisKey() string { //必须有id
	return cd.GetTableName() + "_" + strconv.FormatInt(cd.GetID(), 10)
}
func (cd *ClassDao) GetID() int64 {
	if cd.ID == 0 {
		if cd.Class != nil && cd.Class.ID != 0 {
			cd.ID = cd.Class.ID
		} else {
			name := cd.Name
			if name == "" && cd.Class != nil {
				name = cd.Class.Name
			}
			if name != "" {
				if rdb.HExists(ctx, CLASS_HASH_KEY, name).Val() {
					cd.ID = common.StrToInt64(rdb.HGet(ctx, CLASS_HASH_KEY, name).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from class where name = ?", name).Get(&x.data); err == nil && ok {
						cd.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return cd.ID
}

func (cd *ClassDao) BeforePutToRedis() error {
	rdb.ZAdd(ctx, CLASS_ZSET_KEY, &redis.Z{
		Score:  float64(cd.GetID()),
		Member: cd.GetID(),
	})
	rdb.HSet(ctx, CLASS_HASH_KEY, cd.GetName(), cd.GetID())
	return nil
}

func (cd *ClassDao) BeforeDelete() error {
	rdb.ZRem(ctx, CLASS_ZSET_KEY, cd.GetID())
	rdb.HDel(ctx, CLASS_HASH_KEY, cd.GetName())
	return nil
}

func (cd *ClassDao) Create() error {
	return Create(cd)
}
func (cd *ClassDao) Delete() error {
	return Delete(cd)
}

func (cd *ClassDao) Update(mp map[string]interface{}) error {
	oldName := cd.GetName()
	if err := UpdateCols(cd, mp); err != nil {
		return err
	}
	if newName, ok := mp["name"]; ok && newName.(string) != oldName {
		rdb.HDel(ctx, CLASS_HASH_KEY, oldName)
		cd.Name = newName.(string)
		cd.BeforePutToRedis()
	}
	return nil
}

func CountClasses() int64 {
	return rdb.ZCount(ctx, CLASS_ZSET_KEY, "-inf", "+inf").Val()
}

func GetClasses() []Class {
	ret := make([]Class, 0)
	engine.Asc("id").Find(&ret)
	return ret
}

//班级名查重,except为要排除的记录id(新建时传0)
func CountClassesByNameExcept(name string, except int64) int {
	cnt, _ := engine.Table("class").Where("name = ? and id <> ?", name, except).Count()
	return int(cnt)
}
