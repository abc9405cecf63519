package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// LogConfig 日志落盘配置，零值用默认目录与七天滚动
type LogConfig struct {
	Dir      string
	Name     string
	MaxAge   time.Duration
	Rotation time.Duration
}

func (c *LogConfig) fill() {
	if c.Dir == "" {
		c.Dir = "./logs"
	}
	if c.Name == "" {
		c.Name = filepath.Base(os.Args[0])
	}
	if c.MaxAge == 0 {
		c.MaxAge = 7 * 24 * time.Hour
	}
	if c.Rotation == 0 {
		c.Rotation = 24 * time.Hour
	}
}

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	file, line, funcName := entry.Caller.File, entry.Caller.Line, entry.Caller.Function
	fileName := file[strings.LastIndexByte(file, '/')+1:]
	funcName = funcName[strings.LastIndexByte(funcName, '.')+1:]

	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)

	return []byte(logMessage), nil
}

// Logger 按配置建文件日志，供pitaya的logger.SetLogger使用
func Logger(level logrus.Level, cfg LogConfig) interfaces.Logger {
	cfg.fill()
	l := logrus.New()
	if writer, err := newWriter(cfg); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func newWriter(cfg LogConfig) (*SafeRotateLogs, error) {
	logFile := filepath.Join(cfg.Dir, fmt.Sprintf("%s-%%Y%%m%%d.log", cfg.Name))
	if err := os.MkdirAll(cfg.Dir, os.ModePerm); err != nil {
		return nil, err
	}

	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(cfg.MaxAge),
		rotatelogs.WithRotationTime(cfg.Rotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
		maxAge:     cfg.MaxAge,
		rotation:   cfg.Rotation,
	}, nil
}

// SafeRotateLogs 包装轮转写入器，当前文件被外部清理时重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()

	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(s.maxAge),
			rotatelogs.WithRotationTime(s.rotation),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}

	return s.RotateLogs.Write(p)
}
