package repo

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

// likeEscaper 转义 LIKE 通配符，配合 ESCAPE '!' 使用，各数据库写法一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// jsonFragment 返回字符串在 tags 列中的 JSON 编码形式（不含两侧引号）
func jsonFragment(s string) string {
	quoted, _ := json.Marshal(s)
	return string(quoted[1 : len(quoted)-1])
}

// tagPattern 标签以 JSON 数组存储，匹配带引号的完整元素避免子串误中
func tagPattern(tag string) string {
	quoted, _ := json.Marshal(tag)
	return containsPattern(string(quoted))
}

// matchesSearch 标题、作者或任一标签包含关键字（关键字已转小写）
func matchesSearch(img *model.Image, search string) bool {
	if strings.Contains(strings.ToLower(img.Title), search) ||
		strings.Contains(strings.ToLower(img.Author), search) {
		return true
	}
	return slices.ContainsFunc(img.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), search)
	})
}

func orderClause(sort string) string {
	switch sort {
	case consts.SortOldest:
		return "uploaded_at asc, id asc"
	case consts.SortPopular:
		return "likes desc, id desc"
	case consts.SortViews:
		return "views desc, id desc"
	default:
		return "uploaded_at desc, id desc"
	}
}

func (r *ImageRepository) ListImages(params ListImagesParams) ([]model.Image, int64, error) {
	var images []model.Image
	var total int64

	query := r.db.Model(&model.Image{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	search := strings.ToLower(strings.TrimSpace(params.Search))
	if search != "" || params.Tag != "" {
		ids, err := r.matchImageIDs(params.Category, search, params.Tag)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("id IN ?", ids)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order(orderClause(params.Sort)).Offset(params.Offset).Limit(params.Limit).Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

// matchImageIDs 先用 LIKE 粗筛候选，再按标题、作者与单个标签逐一精确比对，
// 避免关键字命中 tags 列的 JSON 标点
func (r *ImageRepository) matchImageIDs(category, search, tag string) ([]uint, error) {
	candidates := r.db.Model(&model.Image{}).Select("id", "title", "author", "tags")
	if category != "" {
		candidates = candidates.Where("category = ?", category)
	}
	if search != "" {
		like := containsPattern(search)
		candidates = candidates.Where(
			"LOWER(title) LIKE ? ESCAPE '!' OR LOWER(author) LIKE ? ESCAPE '!' OR LOWER(tags) LIKE ? ESCAPE '!'",
			like, like, containsPattern(jsonFragment(search)),
		)
	}
	if tag != "" {
		candidates = candidates.Where("tags LIKE ? ESCAPE '!'", tagPattern(tag))
	}

	var images []model.Image
	if err := candidates.Find(&images).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(images))
	for i := range images {
		if search != "" && !matchesSearch(&images[i], search) {
			continue
		}
		if tag != "" && !slices.Contains(images[i].Tags, tag) {
			continue
		}
		ids = append(ids, images[i].ID)
	}
	return ids, nil
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) IncrementViews(id uint) error {
	return r.db.Model(&model.Image{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *ImageRepository) IncrementDownloads(id uint) error {
	return r.db.Model(&model.Image{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
}

// ListRelated 同分类或有共同标签的其它图片
func (r *ImageRepository) ListRelated(image *model.Image, limit int) ([]model.Image, error) {
	var images []model.Image

	match := r.db.Where("category = ?", image.Category)
	for _, tag := range image.Tags {
		match = match.Or("tags LIKE ? ESCAPE '!'", tagPattern(tag))
	}

	if err := r.db.Model(&model.Image{}).
		Where("id <> ?", image.ID).
		Where(match).
		Order("uploaded_at desc, id desc").
		Limit(limit).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) IsFavorite(userID uint, imageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND image_id = ?", userID, imageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleFavorite 切换喜欢状态并同步点赞数，返回切换后的状态与点赞数
func (r *ImageRepository) ToggleFavorite(userID uint, imageID uint) (bool, int64, error) {
	var liked bool
	var likes int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var fav model.Favorite
		err := tx.Where("user_id = ? AND image_id = ?", userID, imageID).First(&fav).Error
		switch {
		case err == nil:
			if err := tx.Delete(&fav).Error; err != nil {
				return err
			}
			// 点赞数不会减到负数
			if err := tx.Model(&model.Image{}).Where("id = ?", imageID).
				UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Favorite{UserID: userID, ImageID: imageID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Image{}).Where("id = ?", imageID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		var image model.Image
		if err := tx.Select("likes").First(&image, imageID).Error; err != nil {
			return err
		}
		likes = image.Likes
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

// RecordHistory 未浏览过时写入一条记录，并只保留最近 limit 条
func (r *ImageRepository) RecordHistory(userID uint, imageID uint, at time.Time, limit int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.HistoryEntry{}).
			Where("user_id = ? AND image_id = ?", userID, imageID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := tx.Create(&model.HistoryEntry{UserID: userID, ImageID: imageID, CreatedAt: at}).Error; err != nil {
			return err
		}
		if limit <= 0 {
			return nil
		}

		var ids []uint
		if err := tx.Model(&model.HistoryEntry{}).
			Where("user_id = ?", userID).
			Order("created_at desc, id desc").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) <= limit {
			return nil
		}
		return tx.Where("id IN ?", ids[limit:]).Delete(&model.HistoryEntry{}).Error
	})
}

func (r *ImageRepository) ListByUploader(userID uint, offset int, limit int) ([]model.Image, int64, error) {
	var images []model.Image
	var total int64

	query := r.db.Model(&model.Image{}).Where("uploader_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("uploaded_at desc, id desc").Offset(offset).Limit(limit).Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// ListFavorites 按喜欢时间倒序
func (r *ImageRepository) ListFavorites(userID uint, offset int, limit int) ([]model.Image, int64, error) {
	var favorites []model.Favorite
	var total int64

	query := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("Image").
		Order("created_at desc, id desc").
		Offset(offset).Limit(limit).
		Find(&favorites).Error; err != nil {
		return nil, 0, err
	}

	images := make([]model.Image, 0, len(favorites))
	for _, fav := range favorites {
		images = append(images, fav.Image)
	}
	return images, total, nil
}

// ListHistory 按浏览时间倒序，记录中预加载了图片
func (r *ImageRepository) ListHistory(userID uint, offset int, limit int) ([]model.HistoryEntry, int64, error) {
	var entries []model.HistoryEntry
	var total int64

	query := r.db.Model(&model.HistoryEntry{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("Image").
		Order("created_at desc, id desc").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *ImageRepository) ClearHistory(userID uint) (int64, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&model.HistoryEntry{})
	return res.RowsAffected, res.Error
}

func (r *ImageRepository) RemoveHistory(userID uint, imageID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND image_id = ?", userID, imageID).Delete(&model.HistoryEntry{})
	return res.RowsAffected, res.Error
}

func (r *ImageRepository) CountByUploader(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("uploader_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ImageRepository) CountFavorites(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ImageRepository) SumLikesByUploader(userID uint) (int64, error) {
	var sum int64
	if err := r.db.Model(&model.Image{}).
		Where("uploader_id = ?", userID).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}
