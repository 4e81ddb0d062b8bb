package admin

import "github.com/wahhajahmed/KarachiSofas/internal/provider"

// Handler 管理端接口：管理员审批、商品目录、运费与订单处理
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
