package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"perfect-pic-gallery/internal/consts"
	moduledto "perfect-pic-gallery/internal/modules/user/dto"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
)

func doRequest(r *gin.Engine, method, path string, body any, viewer string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if viewer != "" {
		req.Header.Set(consts.HeaderUserID, viewer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：验证缺少或非法的用户身份请求头返回 401。
func TestUserRoutes_RequireViewer(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	for _, viewer := range []string{"", "abc", "0", "-1"} {
		if w := doRequest(r, http.MethodGet, "/user/profile", nil, viewer); w.Code != http.StatusUnauthorized {
			t.Fatalf("viewer=%q 期望 401，实际为 %d", viewer, w.Code)
		}
	}
	if w := doRequest(r, http.MethodGet, "/user/profile", nil, "9999"); w.Code != http.StatusUnauthorized {
		t.Fatalf("未知用户期望 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证资料查询与修改接口。
func TestProfileHandlers(t *testing.T) {
	gdb := setupTestDB(t)
	u := testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	testutils.CreateImage(t, gdb, "mine", "nature", testutils.WithUploader(u), testutils.WithStats(4, 0))
	r := setupRouter()
	viewer := fmt.Sprint(u.ID)

	w := doRequest(r, http.MethodGet, "/user/profile", nil, viewer)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var profile moduledto.UserProfileResponse
	_ = json.Unmarshal(w.Body.Bytes(), &profile)
	if profile.Stats.Uploads != 1 || profile.Stats.LikesReceived != 4 || profile.Bio != consts.DefaultBio {
		t.Fatalf("资料不符: %+v", profile)
	}

	w2 := doRequest(r, http.MethodPatch, "/user/profile", gin.H{"username": "x"}, viewer)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("用户名过短期望 400，实际为 %d", w2.Code)
	}

	w3 := doRequest(r, http.MethodPatch, "/user/profile", gin.H{"username": "新名字", "bio": "你好"}, viewer)
	if w3.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w3.Code, w3.Body.String())
	}
	_ = json.Unmarshal(w3.Body.Bytes(), &profile)
	if profile.Username != "新名字" || profile.Bio != "你好" {
		t.Fatalf("修改结果不符: %+v", profile)
	}
}

// 测试内容：验证上传、喜欢列表接口。
func TestListHandlers(t *testing.T) {
	gdb := setupTestDB(t)
	u := testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	testutils.CreateImage(t, gdb, "mine", "nature", testutils.WithUploader(u))
	liked := testutils.CreateImage(t, gdb, "liked", "city")
	_, _, _ = testImages.ToggleFavorite(u.ID, liked.ID)
	r := setupRouter()
	viewer := fmt.Sprint(u.ID)

	var page moduledto.ImagePageResponse
	w := doRequest(r, http.MethodGet, "/user/uploads?page=1&page_size=10", nil, viewer)
	_ = json.Unmarshal(w.Body.Bytes(), &page)
	if w.Code != http.StatusOK || page.Total != 1 || page.Images[0].Title != "mine" {
		t.Fatalf("上传列表不符: %d %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/user/favorites", nil, viewer)
	_ = json.Unmarshal(w.Body.Bytes(), &page)
	if w.Code != http.StatusOK || page.Total != 1 || page.Images[0].Title != "liked" {
		t.Fatalf("喜欢列表不符: %d %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodGet, "/user/uploads?page=x", nil, viewer); w.Code != http.StatusBadRequest {
		t.Fatalf("非法分页期望 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证浏览历史的查询、移除与清空接口。
func TestHistoryHandlers(t *testing.T) {
	gdb := setupTestDB(t)
	u := testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	a := testutils.CreateImage(t, gdb, "a", "nature")
	b := testutils.CreateImage(t, gdb, "b", "nature")
	_ = testImages.RecordHistory(u.ID, a.ID, time.Now().Add(-time.Minute), 50)
	_ = testImages.RecordHistory(u.ID, b.ID, time.Now(), 50)
	r := setupRouter()
	viewer := fmt.Sprint(u.ID)

	var page moduledto.HistoryPageResponse
	w := doRequest(r, http.MethodGet, "/user/history", nil, viewer)
	_ = json.Unmarshal(w.Body.Bytes(), &page)
	if w.Code != http.StatusOK || page.Total != 2 || page.Items[0].Title != "b" {
		t.Fatalf("浏览历史不符: %d %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodDelete, "/user/history/abc", nil, viewer); w.Code != http.StatusBadRequest {
		t.Fatalf("非法 ID 期望 400，实际为 %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, fmt.Sprintf("/user/history/%d", a.ID), nil, viewer); w.Code != http.StatusOK {
		t.Fatalf("移除期望 200，实际为 %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, fmt.Sprintf("/user/history/%d", a.ID), nil, viewer); w.Code != http.StatusNotFound {
		t.Fatalf("重复移除期望 404，实际为 %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/user/history", nil, viewer)
	if w.Code != http.StatusOK {
		t.Fatalf("清空期望 200，实际为 %d", w.Code)
	}
	var body struct {
		Removed int64 `json:"removed"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Removed != 1 {
		t.Fatalf("期望清空 1 条，实际为 %d", body.Removed)
	}
}
