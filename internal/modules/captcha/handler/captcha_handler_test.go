package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perfect-pic-gallery/internal/captcha"
	moduledto "perfect-pic-gallery/internal/modules/captcha/dto"
	captchaservice "perfect-pic-gallery/internal/modules/captcha/service"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := captchaservice.New(testutils.CaptchaConfig(),
		captchaservice.WithSourceFactory(func() captcha.Source { return testutils.ZeroSource{} }),
	)
	if err != nil {
		t.Fatalf("创建验证码服务失败: %v", err)
	}
	h := New(svc)

	r := gin.New()
	r.GET("/captcha", h.GetCaptcha)
	r.POST("/captcha/:id/refresh", h.RefreshCaptcha)
	r.GET("/captcha/:id/image", h.GetCaptchaImage)
	r.POST("/captcha/verify", h.VerifyCaptcha)
	return r
}

func issue(t *testing.T, r *gin.Engine) moduledto.Challenge {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/captcha", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var ch moduledto.Challenge
	if err := json.Unmarshal(w.Body.Bytes(), &ch); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	return ch
}

func verify(t *testing.T, r *gin.Engine, body gin.H) (int, moduledto.VerifyResponse) {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/captcha/verify", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp moduledto.VerifyResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

// 测试内容：验证获取验证码接口返回 data URI 与会话信息并禁止缓存。
func TestGetCaptcha(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/captcha", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("期望 no-store，实际为 %q", got)
	}

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	for _, key := range []string{"captcha_id", "captcha_image", "length", "expires_at"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("响应缺少字段 %s: %s", key, w.Body.String())
		}
	}
	if img, _ := body["captcha_image"].(string); !strings.HasPrefix(img, "data:image/svg+xml,") {
		t.Fatalf("期望 SVG data URI，实际为 %q", img)
	}
}

// 测试内容：验证图片接口返回 image/svg+xml，未知会话返回 404。
func TestGetCaptchaImage(t *testing.T) {
	r := setupRouter(t)
	ch := issue(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/captcha/"+ch.ID+"/image", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Fatalf("期望 image/svg+xml，实际为 %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Fatalf("期望 SVG 文档，实际为 %q", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/captcha/missing/image", nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w2.Code)
	}
}

// 测试内容：验证校验接口区分正确与错误答案，且校验不消耗验证码。
func TestVerifyCaptcha(t *testing.T) {
	r := setupRouter(t)
	ch := issue(t, r)

	code, resp := verify(t, r, gin.H{"captcha_id": ch.ID, "captcha_answer": "aaaa"})
	if code != http.StatusOK || !resp.Valid {
		t.Fatalf("期望小写答案通过，实际为 %d %+v", code, resp)
	}
	_, resp = verify(t, r, gin.H{"captcha_id": ch.ID, "captcha_answer": "aaaa", "case_sensitive": true})
	if resp.Valid {
		t.Fatalf("大小写敏感时小写答案不应通过")
	}
	_, resp = verify(t, r, gin.H{"captcha_id": ch.ID, "captcha_answer": testutils.ZeroCaptchaCode})
	if !resp.Valid {
		t.Fatalf("期望重复校验仍然通过")
	}
	_, resp = verify(t, r, gin.H{"captcha_id": ch.ID, "captcha_answer": "BBBB"})
	if resp.Valid {
		t.Fatalf("错误答案不应通过")
	}

	if code, _ := verify(t, r, gin.H{"captcha_answer": "AAAA"}); code != http.StatusBadRequest {
		t.Fatalf("缺少 captcha_id 期望 400，实际为 %d", code)
	}
}

// 测试内容：验证刷新接口保持会话 ID，未知会话返回 404。
func TestRefreshCaptcha(t *testing.T) {
	r := setupRouter(t)
	ch := issue(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/captcha/"+ch.ID+"/refresh", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	var refreshed moduledto.Challenge
	_ = json.Unmarshal(w.Body.Bytes(), &refreshed)
	if refreshed.ID != ch.ID {
		t.Fatalf("期望会话 ID 不变，实际为 %q", refreshed.ID)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/captcha/missing/refresh", nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w2.Code)
	}
}
