package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName 写入每条日志的 service 字段
const ServiceName = "karachisofas"

// Options 日志输出配置
type Options struct {
	Dir        string
	Filename   string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// L 全局结构化日志实例，未初始化时为 nil，使用方应优先调用 Z()
var L *zap.Logger

var (
	mu       sync.RWMutex
	fallback = sync.OnceValue(func() *zap.Logger {
		return build(consoleCore(zap.NewAtomicLevelAt(zap.InfoLevel)))
	})
)

// Init 按运行模式创建日志并设为全局
func Init(mode string, options Options) *zap.Logger {
	l := New(mode, options)
	Replace(l)
	return l
}

// Replace 替换全局日志实例，返回恢复函数（测试中注入 observer 使用）
func Replace(l *zap.Logger) func() {
	mu.Lock()
	prev := L
	L = l
	mu.Unlock()
	undo := zap.ReplaceGlobals(l)
	return func() {
		mu.Lock()
		L = prev
		mu.Unlock()
		undo()
	}
}

// New 创建日志实例；debug 只输出控制台，其他模式另写 JSON 到滚动文件
func New(mode string, options Options) *zap.Logger {
	debug := strings.EqualFold(strings.TrimSpace(mode), "debug")
	level := parseLevel(options.Level, debug)
	console := consoleCore(level)
	if debug {
		return build(console)
	}
	sink, err := rotatingSink(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, console only: %v\n", err)
		return build(console)
	}
	file := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, level)
	return build(zapcore.NewTee(console, file))
}

func build(core zapcore.Core) *zap.Logger {
	return zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", ServiceName)),
	)
}

func consoleCore(level zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(os.Stdout), level)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

// debug 模式强制 debug 级别，无法解析的级别按 info 处理
func parseLevel(raw string, debug bool) zap.AtomicLevel {
	if debug {
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	level, err := zapcore.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		level = zap.InfoLevel
	}
	return zap.NewAtomicLevelAt(level)
}

// Z 当前全局 logger，未初始化时回退到控制台 info 级别
func Z() *zap.Logger {
	mu.RLock()
	l := L
	mu.RUnlock()
	if l == nil {
		return fallback()
	}
	return l
}

// S 当前全局 SugaredLogger
func S() *zap.SugaredLogger {
	return Z().Sugar()
}

// SW 带固定字段的 SugaredLogger
func SW(kv ...interface{}) *zap.SugaredLogger {
	return S().With(kv...)
}

// StdLogger 适配只接受标准库 log 的组件（gorm、http.Server）
func StdLogger() *log.Logger {
	return zap.NewStdLog(Z())
}

func Debugw(message string, kv ...interface{}) { S().Debugw(message, kv...) }
func Infow(message string, kv ...interface{})  { S().Infow(message, kv...) }
func Warnw(message string, kv ...interface{})  { S().Warnw(message, kv...) }
func Errorw(message string, kv ...interface{}) { S().Errorw(message, kv...) }
