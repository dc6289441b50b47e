package consts

// 排序方式
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
	SortViews   = "views"
)

// FilterAll 分类/标签不过滤
const FilterAll = "all"

// Category 图片分类及其默认标签
type Category struct {
	Key  string   `json:"key"`
	Tags []string `json:"tags"`
}

// Categories 按固定顺序列出的全部分类
var Categories = []Category{
	{Key: "nature", Tags: []string{"自然", "风景", "户外", "生态"}},
	{Key: "portrait", Tags: []string{"人物", "肖像", "人像", "表情"}},
	{Key: "abstract", Tags: []string{"抽象", "创意", "现代", "设计"}},
	{Key: "landscape", Tags: []string{"风景", "山水", "远景", "地平线"}},
	{Key: "city", Tags: []string{"城市", "都市", "建筑", "街拍"}},
	{Key: "animal", Tags: []string{"动物", "宠物", "野生动物", "自然"}},
	{Key: "food", Tags: []string{"美食", "饮食", "烹饪", "食材"}},
	{Key: "travel", Tags: []string{"旅行", "旅游", "探险", "文化"}},
}

// FindCategory 按 key 查找分类
func FindCategory(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
