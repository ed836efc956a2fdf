package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger builds a JSON zap logger writing to a rotated file. Used for
// the outbound HTTP request log, which is kept separate from the service log.
func NewFileLogger(filePath string) (*zap.Logger, error) {
	rotator := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBack,
		MaxAge:     maxAge,
		Compress:   true,
	}

	writer := zapcore.AddSync(rotator)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
