// pkg/dashboard/hlog.go
package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"go.uber.org/zap"
)

// HertzZapAdapter routes hertz's internal logging to zap
type HertzZapAdapter struct {
	logger *zap.SugaredLogger
}

var _ hlog.FullLogger = (*HertzZapAdapter)(nil)

// NewHertzZapAdapter creates a hlog.FullLogger backed by logger
func NewHertzZapAdapter(logger *zap.Logger) *HertzZapAdapter {
	return &HertzZapAdapter{logger: logger.Named("hertz").Sugar()}
}

func (h *HertzZapAdapter) Trace(v ...interface{})  { h.logger.Debug(formatMessage(v...)) }
func (h *HertzZapAdapter) Debug(v ...interface{})  { h.logger.Debug(formatMessage(v...)) }
func (h *HertzZapAdapter) Info(v ...interface{})   { h.logger.Info(formatMessage(v...)) }
func (h *HertzZapAdapter) Notice(v ...interface{}) { h.logger.Info(formatMessage(v...)) }
func (h *HertzZapAdapter) Warn(v ...interface{})   { h.logger.Warn(formatMessage(v...)) }
func (h *HertzZapAdapter) Error(v ...interface{})  { h.logger.Error(formatMessage(v...)) }

// Fatal logs at error level; hertz must not exit the process
func (h *HertzZapAdapter) Fatal(v ...interface{}) { h.logger.Error(formatMessage(v...)) }

func (h *HertzZapAdapter) Tracef(format string, v ...interface{})  { h.logger.Debugf(format, v...) }
func (h *HertzZapAdapter) Debugf(format string, v ...interface{})  { h.logger.Debugf(format, v...) }
func (h *HertzZapAdapter) Infof(format string, v ...interface{})   { h.logger.Infof(format, v...) }
func (h *HertzZapAdapter) Noticef(format string, v ...interface{}) { h.logger.Infof(format, v...) }
func (h *HertzZapAdapter) Warnf(format string, v ...interface{})   { h.logger.Warnf(format, v...) }
func (h *HertzZapAdapter) Errorf(format string, v ...interface{})  { h.logger.Errorf(format, v...) }
func (h *HertzZapAdapter) Fatalf(format string, v ...interface{})  { h.logger.Errorf(format, v...) }

func (h *HertzZapAdapter) CtxTracef(_ context.Context, format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) CtxDebugf(_ context.Context, format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) CtxInfof(_ context.Context, format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) CtxNoticef(_ context.Context, format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) CtxWarnf(_ context.Context, format string, v ...interface{}) {
	h.logger.Warnf(format, v...)
}

func (h *HertzZapAdapter) CtxErrorf(_ context.Context, format string, v ...interface{}) {
	h.logger.Errorf(format, v...)
}

func (h *HertzZapAdapter) CtxFatalf(_ context.Context, format string, v ...interface{}) {
	h.logger.Errorf(format, v...)
}

// SetLevel is a no-op; the zap level is fixed at construction
func (h *HertzZapAdapter) SetLevel(hlog.Level) {}

// SetOutput is a no-op; zap owns its sinks
func (h *HertzZapAdapter) SetOutput(io.Writer) {}

func formatMessage(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}
