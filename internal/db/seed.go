package db

import (
	"fmt"
	"math/rand/v2"
	"time"

	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	sampleImageCount = 50
	// 演示账号的初始密码
	samplePassword = "123456"
)

var sampleAuthors = []string{"摄影师小明", "艺术爱好者", "城市探索者", "自然观察家", "旅行摄影师"}

type sampleUser struct {
	user      model.User
	favorites []uint
	uploads   []uint
	history   []uint
}

func sampleUsers() []sampleUser {
	return []sampleUser{
		{
			user:      model.User{Phone: "13800138000", Username: "测试用户", JoinDate: "2024-01-15", Bio: consts.DefaultBio},
			favorites: []uint{1, 3, 5},
			uploads:   []uint{2, 4},
			history:   []uint{1, 2, 3},
		},
		{
			user:      model.User{Phone: "13900139000", Username: "艺术爱好者", JoinDate: "2024-01-20", Bio: consts.DefaultBio},
			favorites: []uint{2, 4, 6},
			uploads:   []uint{1, 3, 5},
			history:   []uint{4, 5, 6},
		},
	}
}

// SeedIfEmpty 图片表为空时写入两名演示用户与 50 张示例图片
func SeedIfEmpty(gdb *gorm.DB, now time.Time) (bool, error) {
	var count int64
	if err := gdb.Model(&model.Image{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	rnd := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(sampleImageCount)))
	users := sampleUsers()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	for i := range users {
		users[i].user.Password = string(hashedPassword)
	}

	// 示例数据中的图片编号从 1 开始，写库后映射到真实 ID
	uploaderIdx := make(map[int]int)
	for ui, su := range users {
		for _, n := range su.uploads {
			uploaderIdx[int(n)] = ui
		}
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			if err := tx.Create(&users[i].user).Error; err != nil {
				return err
			}
		}

		images := make([]model.Image, 0, sampleImageCount)
		for n := 1; n <= sampleImageCount; n++ {
			category := consts.Categories[rnd.IntN(len(consts.Categories))]
			img := model.Image{
				Title:      fmt.Sprintf("示例图片 %d", n),
				Author:     sampleAuthors[rnd.IntN(len(sampleAuthors))],
				URL:        fmt.Sprintf("https://picsum.photos/800/600?random=%d", n),
				Thumbnail:  fmt.Sprintf("https://picsum.photos/300/200?random=%d", n),
				Category:   category.Key,
				Tags:       append([]string(nil), category.Tags...),
				Likes:      int64(rnd.IntN(200)),
				Views:      int64(rnd.IntN(1000)),
				UploadedAt: now.Add(-time.Duration(rnd.Int64N(int64(30 * 24 * time.Hour)))),
			}
			if ui, ok := uploaderIdx[n]; ok {
				uid := users[ui].user.ID
				img.UploaderID = &uid
				img.Author = users[ui].user.Username
			}
			images = append(images, img)
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
		imageID := func(n uint) uint { return images[n-1].ID }

		for _, su := range users {
			for _, n := range su.favorites {
				if err := tx.Create(&model.Favorite{UserID: su.user.ID, ImageID: imageID(n)}).Error; err != nil {
					return err
				}
			}
			// 历史越靠前越新
			for i := len(su.history) - 1; i >= 0; i-- {
				entry := model.HistoryEntry{
					UserID:    su.user.ID,
					ImageID:   imageID(su.history[i]),
					CreatedAt: now.Add(-time.Duration(i) * time.Minute),
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
