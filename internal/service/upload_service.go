package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/config"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

// 图片分目录存放
var uploadScenes = map[string]struct{}{
	"product":  {},
	"category": {},
	"common":   {},
}

// UploadedImage 上传结果
type UploadedImage struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Size        int64  `json:"size"`
}

// UploadService 商品与分类图片上传，保存在本地磁盘并由静态路由对外提供
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建文件上传服务实例
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveFile 校验大小、扩展名与真实类型后落盘
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (*UploadedImage, error) {
	limits := s.cfg.Upload
	if limits.MaxSize > 0 && file.Size > limits.MaxSize {
		return nil, fmt.Errorf("%w: max %d MB", ErrUploadTooLarge, limits.MaxSize/1024/1024)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(limits.AllowedExtensions) > 0 && !extensionAllowed(ext, limits.AllowedExtensions) {
		return nil, fmt.Errorf("%w: extension %q", ErrUploadTypeInvalid, ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result, err := inspectImage(src, limits.AllowedTypes)
	if err != nil {
		return nil, err
	}
	result.Size = file.Size

	dir := normalizeUploadScene(scene)
	datePath := time.Now().Format("2006/01")
	filename := uuid.NewString() + ext
	target := filepath.Join(s.uploadDir(), dir, filepath.FromSlash(datePath), filename)
	if err := writeFileAtomic(target, src); err != nil {
		return nil, err
	}
	result.URL = path.Join(s.publicPrefix(), dir, datePath, filename)
	return result, nil
}

// inspectImage 嗅探内容类型，位图额外解析尺寸；结束时 src 回到开头
func inspectImage(src multipart.File, allowedTypes []string) (*UploadedImage, error) {
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return nil, err
	}
	contentType := http.DetectContentType(head[:n])
	if len(allowedTypes) > 0 && !containsFold(allowedTypes, contentType) {
		return nil, fmt.Errorf("%w: type %s", ErrUploadTypeInvalid, contentType)
	}
	result := &UploadedImage{ContentType: contentType}
	if strings.HasPrefix(contentType, "image/") && contentType != "image/webp" {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		cfg, _, err := image.DecodeConfig(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadTypeInvalid, err)
		}
		result.Width, result.Height = cfg.Width, cfg.Height
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return result, nil
}

// writeFileAtomic 先写临时文件再重命名，失败时不留下半个文件
func writeFileAtomic(target string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (s *UploadService) uploadDir() string {
	if dir := strings.TrimSpace(s.cfg.Upload.Dir); dir != "" {
		return dir
	}
	return "uploads"
}

func (s *UploadService) publicPrefix() string {
	prefix := strings.Trim(strings.TrimSpace(s.cfg.Upload.PublicPrefix), "/")
	if prefix == "" {
		prefix = "uploads"
	}
	return "/" + prefix
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := uploadScenes[value]; ok {
		return value
	}
	return "common"
}

func extensionAllowed(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, candidate := range allowed {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate != "" && "."+strings.TrimPrefix(candidate, ".") == ext {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}
