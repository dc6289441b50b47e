package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ValidatePhone 校验中国大陆手机号
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if utf8.RuneCountInString(strings.TrimSpace(username)) < 2 {
		return false, "用户名至少2位"
	}
	return true, ""
}

// ValidatePassword 密码至少 6 位
func ValidatePassword(password string) (bool, string) {
	if utf8.RuneCountInString(password) < 6 {
		return false, "密码至少6位"
	}
	return true, ""
}

// ValidateImageURL 只接受 http(s) 地址与 data:image/ 内联图片
func ValidateImageURL(u string) bool {
	lower := strings.ToLower(strings.TrimSpace(u))
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:image/")
}
