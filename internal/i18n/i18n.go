// Package i18n 接口提示文案
package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleEN = "en-US"
	LocaleUR = "ur-PK"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

// ResolveLocale 从请求头解析语言，未支持的语言回退到默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	raw := strings.TrimSpace(c.GetHeader("X-Locale"))
	if raw == "" {
		raw = c.GetHeader("Accept-Language")
	}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch {
		case tag == "":
			continue
		case strings.HasPrefix(tag, "ur"):
			return LocaleUR
		case strings.HasPrefix(tag, "en"):
			return LocaleEN
		}
	}
	return DefaultLocale
}

// T 根据 key 取文案，找不到时回退英文，再找不到返回 key 本身
func T(locale, key string) string {
	if table, ok := catalog[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 带参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
