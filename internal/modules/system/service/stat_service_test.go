package service

import (
	"runtime"
	"testing"

	"perfect-pic-gallery/internal/consts"
	moduledto "perfect-pic-gallery/internal/modules/system/dto"
	"perfect-pic-gallery/internal/testutils"
)

// 测试内容：验证空库时统计全部为 0。
func TestGetServerStats_EmptyGallery(t *testing.T) {
	setupTestDB(t)

	stats, err := testService.GetServerStats()
	if err != nil {
		t.Fatalf("GetServerStats: %v", err)
	}
	if stats.GalleryTotals != (moduledto.GalleryTotals{}) {
		t.Fatalf("期望全为 0，实际为 %+v", stats.GalleryTotals)
	}
	if stats.CaptchaSessions != 3 || stats.Version != consts.ApplicationVersion {
		t.Fatalf("统计不符: %+v", stats)
	}
	if stats.SystemInfo.OS != runtime.GOOS || stats.SystemInfo.NumCPU <= 0 {
		t.Fatalf("系统信息不符: %+v", stats.SystemInfo)
	}
}

// 测试内容：验证图片与用户数据被正确汇总。
func TestGetServerStats_Totals(t *testing.T) {
	gdb := setupTestDB(t)
	testutils.CreateUser(t, gdb, "13800138000", "测试用户")
	testutils.CreateImage(t, gdb, "a", "nature", testutils.WithStats(3, 10))
	img := testutils.CreateImage(t, gdb, "b", "city", testutils.WithStats(2, 5))
	gdb.Model(&img).Update("downloads", 4)

	stats, err := testService.GetServerStats()
	if err != nil {
		t.Fatalf("GetServerStats: %v", err)
	}
	want := moduledto.GalleryTotals{ImageCount: 2, UserCount: 1, TotalLikes: 5, TotalViews: 15, TotalDownloads: 4}
	if stats.GalleryTotals != want {
		t.Fatalf("期望 %+v，实际为 %+v", want, stats.GalleryTotals)
	}
}
