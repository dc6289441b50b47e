package utils

import "testing"

// 测试内容：验证手机号格式校验。
func TestValidatePhone(t *testing.T) {
	valid := []string{"13800138000", "19912345678", "15000000000"}
	invalid := []string{"", "12800138000", "1380013800", "138001380001", "2380013800a", "１3800138000"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("期望 %q 合法", p)
		}
	}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("期望 %q 非法", p)
		}
	}
}

// 测试内容：验证用户名长度按字符而非字节计算。
func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"两个汉字", "小明", true},
		{"英文", "ab", true},
		{"单个汉字", "明", false},
		{"空白", "   ", false},
		{"首尾空白", " a ", false},
	}
	for _, tt := range tests {
		ok, msg := ValidateUsername(tt.input)
		if ok != tt.ok {
			t.Fatalf("%s: 期望 %v，实际为 %v (%s)", tt.name, tt.ok, ok, msg)
		}
		if !ok && msg == "" {
			t.Fatalf("%s: 期望错误信息", tt.name)
		}
	}
}

// 测试内容：验证图片地址只接受 http(s) 与 data:image/。
func TestValidateImageURL(t *testing.T) {
	for _, u := range []string{"https://picsum.photos/1", "HTTP://a/b.png", "data:image/png;base64,AAAA"} {
		if !ValidateImageURL(u) {
			t.Fatalf("期望 %q 合法", u)
		}
	}
	for _, u := range []string{"", "ftp://a/b", "javascript:alert(1)", "data:text/html,x", "/local.png"} {
		if ValidateImageURL(u) {
			t.Fatalf("期望 %q 非法", u)
		}
	}
}

// 测试内容：验证密码长度至少 6 位。
func TestValidatePassword(t *testing.T) {
	if ok, msg := ValidatePassword("12345"); ok || msg != "密码至少6位" {
		t.Fatalf("期望 5 位密码被拒绝，实际为 %v %q", ok, msg)
	}
	if ok, _ := ValidatePassword("123456"); !ok {
		t.Fatalf("期望 6 位密码通过")
	}
}
