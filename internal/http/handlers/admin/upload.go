package admin

import (
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传商品/分类图片
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_missing", nil)
		return
	}
	scene := c.DefaultPostForm("scene", "product")

	uploaded, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondWithMappedError(c, err, uploadErrorRules, response.CodeInternal, "error.upload_failed")
		return
	}

	response.Success(c, gin.H{
		"url":          uploaded.URL,
		"filename":     file.Filename,
		"size":         uploaded.Size,
		"content_type": uploaded.ContentType,
		"width":        uploaded.Width,
		"height":       uploaded.Height,
	})
}
