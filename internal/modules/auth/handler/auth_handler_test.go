package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	moduledto "perfect-pic-gallery/internal/modules/auth/dto"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
)

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCaptchaID(t *testing.T) string {
	t.Helper()
	ch, err := testCaptcha.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return ch.ID
}

// 测试内容：验证注册后可用同一手机号登录，并返回用户 ID。
func TestRegisterThenLogin(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := postJSON(r, "/register", gin.H{
		"phone": "13700137000", "username": "新用户", "password": "secret1", "confirm_password": "secret1",
		"captcha_id": newCaptchaID(t), "captcha_answer": "aaaa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("注册期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		User moduledto.AuthUser `json:"user"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &reg)
	if reg.User.ID == 0 || reg.User.Username != "新用户" {
		t.Fatalf("注册结果不符: %s", w.Body.String())
	}

	w2 := postJSON(r, "/login", gin.H{
		"phone": "13700137000", "password": "secret1", "captcha_id": newCaptchaID(t), "captcha_answer": "AAAA",
	})
	if w2.Code != http.StatusOK {
		t.Fatalf("登录期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
	var login struct {
		User moduledto.AuthUser `json:"user"`
	}
	_ = json.Unmarshal(w2.Body.Bytes(), &login)
	if login.User.ID != reg.User.ID || login.User.LastLogin == nil {
		t.Fatalf("登录结果不符: %s", w2.Body.String())
	}
}

// 测试内容：验证注册接口的参数、验证码与重复手机号错误码。
func TestRegisterHandler_Errors(t *testing.T) {
	gdb := setupTestDB(t)
	testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	r := setupRouter()

	if w := postJSON(r, "/register", gin.H{"phone": "13700137000"}); w.Code != http.StatusBadRequest {
		t.Fatalf("缺少字段期望 400，实际为 %d", w.Code)
	}

	w := postJSON(r, "/register", gin.H{
		"phone": "13700137000", "username": "ab", "password": "secret1", "confirm_password": "secret1",
		"captcha_id": newCaptchaID(t), "captcha_answer": "BBBB",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("验证码错误期望 400，实际为 %d", w.Code)
	}

	w = postJSON(r, "/register", gin.H{
		"phone": "13700137000", "username": "ab", "password": "secret1", "confirm_password": "secret2",
		"captcha_id": newCaptchaID(t), "captcha_answer": "AAAA",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("两次密码不一致期望 400，实际为 %d", w.Code)
	}

	w = postJSON(r, "/register", gin.H{
		"phone": "13800138000", "username": "ab", "password": "secret1", "confirm_password": "secret1",
		"captcha_id": newCaptchaID(t), "captcha_answer": "AAAA",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("重复手机号期望 409，实际为 %d", w.Code)
	}
}

// 测试内容：验证未注册手机号或密码错误登录返回 401，缺少密码返回 400，且同一验证码不能重复使用。
func TestLoginHandler_Errors(t *testing.T) {
	gdb := setupTestDB(t)
	testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	r := setupRouter()

	if w := postJSON(r, "/login", gin.H{"phone": "13800138000", "captcha_id": newCaptchaID(t), "captcha_answer": "AAAA"}); w.Code != http.StatusBadRequest {
		t.Fatalf("缺少密码期望 400，实际为 %d", w.Code)
	}

	w := postJSON(r, "/login", gin.H{
		"phone": "13900139000", "password": testutils.DefaultPassword, "captcha_id": newCaptchaID(t), "captcha_answer": "AAAA",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("未注册期望 401，实际为 %d", w.Code)
	}

	w = postJSON(r, "/login", gin.H{
		"phone": "13800138000", "password": "wrong-pass", "captcha_id": newCaptchaID(t), "captcha_answer": "AAAA",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("密码错误期望 401，实际为 %d", w.Code)
	}

	id := newCaptchaID(t)
	body := gin.H{"phone": "13800138000", "password": testutils.DefaultPassword, "captcha_id": id, "captcha_answer": "AAAA"}
	if w := postJSON(r, "/login", body); w.Code != http.StatusOK {
		t.Fatalf("首次登录期望 200，实际为 %d", w.Code)
	}
	if w := postJSON(r, "/login", body); w.Code != http.StatusBadRequest {
		t.Fatalf("验证码复用期望 400，实际为 %d", w.Code)
	}
}
