package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Perfect Pic Gallery"
	// ApplicationVersion 后端版本
	ApplicationVersion = "1.0.0"

	// HeaderUserID 标识当前操作用户的请求头（演示身份，无会话令牌）
	HeaderUserID = "X-User-ID"
	// ContextUserID gin.Context 中保存当前用户 ID 的键
	ContextUserID = "id"

	// DefaultBio 新用户默认简介
	DefaultBio = "这个人很懒，什么都没有留下..."
)
