package testutils

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/captcha"
	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ZeroSource always picks the first alphabet rune and the midpoint of every
// random range, so a default engine always produces "AAAA".
type ZeroSource struct{}

func (ZeroSource) IntN(int) int     { return 0 }
func (ZeroSource) Float64() float64 { return 0.5 }

// ZeroCaptchaCode is the code produced by a ZeroSource with the default alphabet.
const ZeroCaptchaCode = "AAAA"

// CaptchaConfig returns the default captcha settings used by the server.
func CaptchaConfig() config.CaptchaConfig {
	def := captcha.DefaultConfig()
	return config.CaptchaConfig{
		Width:             def.Width,
		Height:            def.Height,
		Length:            def.Length,
		Alphabet:          def.Alphabet,
		BackgroundPalette: def.BackgroundPalette,
		ForegroundColor:   def.ForegroundColor,
		FontSize:          def.FontSize,
		FontFamily:        def.FontFamily,
		Noise:             def.Noise,
		Lines:             def.Lines,
		TTLSeconds:        300,
		MaxSessions:       1000,
	}
}

// GalleryConfig returns the default gallery paging settings.
func GalleryConfig() config.GalleryConfig {
	return config.GalleryConfig{PageSize: 12, HistoryLimit: 50, RelatedLimit: 6}
}

// DefaultPassword is the plain password of every user made by CreateUser.
const DefaultPassword = "123456"

// CreateUser inserts a user with the given phone and username whose
// password is DefaultPassword.
func CreateUser(t *testing.T, gdb *gorm.DB, phone, username string) model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := model.User{Phone: phone, Username: username, Password: string(hashed), Bio: consts.DefaultBio, JoinDate: "2024-01-15"}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// ImageOption customizes a fixture image before insertion.
type ImageOption func(*model.Image)

func WithUploader(u model.User) ImageOption {
	return func(img *model.Image) {
		id := u.ID
		img.UploaderID = &id
		img.Author = u.Username
	}
}

func WithStats(likes, views int64) ImageOption {
	return func(img *model.Image) {
		img.Likes = likes
		img.Views = views
	}
}

func WithUploadedAt(at time.Time) ImageOption {
	return func(img *model.Image) { img.UploadedAt = at }
}

func WithTags(tags ...string) ImageOption {
	return func(img *model.Image) { img.Tags = tags }
}

// CreateImage inserts an image in the given category.
func CreateImage(t *testing.T, gdb *gorm.DB, title, category string, opts ...ImageOption) model.Image {
	t.Helper()
	img := model.Image{
		Title:      title,
		Author:     "摄影师小明",
		URL:        "https://picsum.photos/800/600?random=1",
		Thumbnail:  "https://picsum.photos/300/200?random=1",
		Category:   category,
		Tags:       []string{},
		UploadedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&img)
	}
	if err := gdb.Create(&img).Error; err != nil {
		t.Fatalf("create image: %v", err)
	}
	return img
}
