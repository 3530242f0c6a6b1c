package i18n

func init() {
	Register(NewCatalog("zh-CN", map[Code]string{
		"UNKNOWN":             "发生未知错误",
		"UNINITIALIZED":       "{{if .entity}}{{.entity}}{{else}}会话状态{{end}}尚未初始化",
		"ALREADY_INITIALIZED": "{{if .entity}}{{.entity}}{{else}}会话状态{{end}}已经初始化",
		"CONFLICT":            "当前会话阶段不允许此操作",
		"NO_BATTLE":           "尚未触发战斗",
		"INVALID_INPUT":       "无法解析提交的数据",
		"ENGINE_FAILURE":      "游戏引擎拒绝了该操作",
		"LOCK_FAILURE":        "内部同步失败",
	}))
}
