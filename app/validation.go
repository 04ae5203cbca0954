package app

//对请求的参数进行验证
import (
	"StudentManagementSystem/common"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	zh_translations "gopkg.in/go-playground/validator.v9/translations/zh"
	"strings"
)

//安装绑定验证
func validate(s interface{}) (bool, string) {
	Validate := validator.New()
	zh_ch := zh.New()
	uni := ut.New(zh_ch)
	trans, _ := uni.GetTranslator("zh")
	zh_translations.RegisterDefaultTranslations(Validate, trans)
	errs := Validate.Struct(s)
	if errs != nil {
		var msg string
		for _, err := range errs.(validator.ValidationErrors) {
			msg += err.Translate(trans) + "\n"
		}
		return false, msg
	}
	return true, ""
}

//登陆参数验证
type loginValidtor struct {
	Username string `form:"username"  validate:"gte=2,lte=50,required"`
	Password string `form:"password"  validate:"required"`
	Remember bool   `form:"remember"`
}

func (lv *loginValidtor) isOk() (bool, string) {
	if strings.ContainsAny(lv.Username, " \n\t\r") {
		return false, "Username 不能包含空字符"
	}
	if strings.ContainsAny(lv.Password, " \n\t\r") {
		return false, "Password 不能包含空字符"
	}
	return validate(lv)
}

//注册和管理员代建用户共用
type registerValidtor struct {
	Username        string `form:"username"  validate:"gte=2,lte=50,required"`
	Password        string `form:"password"  validate:"gte=6,lte=16,required,printascii"`
	ConfirmPassword string `form:"confirm_password"  validate:"required,eqfield=Password"`
	Email           string `form:"email"  validate:"email,required"`
	FirstName       string `form:"first_name" validate:"required,lte=50"`
	LastName        string `form:"last_name" validate:"required,lte=50"`
}

func (rv *registerValidtor) isOk() (bool, string) {
	if strings.ContainsAny(rv.Username, " \n\t\r") {
		return false, "Username 不能包含空字符"
	}
	if strings.ContainsAny(rv.Password, " \n\t\r") {
		return false, "Password 不能包含空字符"
	}
	return validate(rv)
}

//班级参数验证
type classValidtor struct {
	Name        string `form:"name" validate:"required,lte=50"`
	Description string `form:"description"`
}

func (cv *classValidtor) isOk() (bool, string) {
	return validate(cv)
}

//学生参数验证, DateOfBirth按 2006-01-02 格式
type studentValidtor struct {
	StudentID   string `form:"student_id" validate:"gte=2,lte=20,required"`
	FirstName   string `form:"first_name" validate:"required,lte=50"`
	LastName    string `form:"last_name" validate:"required,lte=50"`
	Gender      string `form:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth string `form:"date_of_birth" validate:"required"`
	Address     string `form:"address"`
	Phone       string `form:"phone" validate:"lte=20"`
	Email       string `form:"email" validate:"omitempty,email"`
	ClassID     int64  `form:"class_id" validate:"required"`
}

func (sv *studentValidtor) isOk() (bool, string) {
	if strings.ContainsAny(sv.StudentID, " \n\t\r") {
		return false, "学号不能包含空字符"
	}
	if !common.IsValidDate(sv.DateOfBirth) {
		return false, "出生日期格式错误"
	}
	return validate(sv)
}

//成绩参数验证
type gradeValidtor struct {
	StudentID    int64   `form:"student_id" validate:"required"`
	Subject      string  `form:"subject" validate:"required,lte=50"`
	Score        float64 `form:"score" validate:"gte=0,lte=100"`
	Grade        string  `form:"grade" validate:"lte=10"`
	Semester     string  `form:"semester" validate:"required,oneof=1st 2nd"`
	AcademicYear string  `form:"academic_year" validate:"required,lte=20"`
}

func (gv *gradeValidtor) isOk() (bool, string) {
	return validate(gv)
}

//考勤参数验证, Date为空时默认今天
type attendanceValidtor struct {
	StudentID int64  `form:"student_id" validate:"required"`
	Date      string `form:"date"`
	Status    string `form:"status" validate:"required,oneof=present absent late excused"`
	Notes     string `form:"notes"`
}

func (av *attendanceValidtor) isOk() (bool, string) {
	if av.Date != "" && !common.IsValidDate(av.Date) {
		return false, "日期格式错误"
	}
	return validate(av)
}
