package service

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
)

// 测试内容：验证分页参数的默认值与上限。
func TestPaginate(t *testing.T) {
	s := NewStaticAppService(config.Config{Gallery: config.GalleryConfig{PageSize: 12}}, nil)

	cases := []struct {
		page, size                     int
		wantPage, wantSize, wantOffset int
	}{
		{0, 0, 1, 12, 0},
		{2, 0, 2, 12, 12},
		{3, 20, 3, 20, 40},
		{1, 500, 1, 100, 0},
		{-5, -1, 1, 12, 0},
	}
	for _, tc := range cases {
		page, size, offset := s.Paginate(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize || offset != tc.wantOffset {
			t.Fatalf("Paginate(%d,%d) = %d,%d,%d", tc.page, tc.size, page, size, offset)
		}
	}
}

// 测试内容：验证画廊配置缺省时使用默认值。
func TestGalleryDefaults(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	s := NewStaticAppService(config.Config{}, func() time.Time { return now })

	g := s.Gallery()
	if g.PageSize != 12 || g.HistoryLimit != 50 || g.RelatedLimit != 6 {
		t.Fatalf("非预期默认值: %+v", g)
	}
	if !s.Now().Equal(now) {
		t.Fatalf("期望使用注入的时钟")
	}
}
