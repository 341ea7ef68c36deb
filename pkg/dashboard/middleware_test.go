package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/David-Botos/catalog-eda/pkg/config"
)

func observedServer() (*Server, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{
		TopN: 10,
		Dashboard: &config.DashboardConfig{
			ListenAddr:      "127.0.0.1:0",
			TableRowLimit:   100,
			DefaultYearFrom: 2010,
		},
	}
	return NewServer(testCatalog(), cfg, zap.New(core)), logs
}

func TestRecoveryLogsPanickedRequest(t *testing.T) {
	s, logs := observedServer()
	s.hertz.GET("/boom", func(ctx context.Context, c *app.RequestContext) {
		panic("boom")
	})

	w := ut.PerformRequest(s.hertz.Engine, "GET", "/boom", nil,
		ut.Header{Key: RequestIDKey, Value: "req-123"})
	resp := w.Result()

	if resp.StatusCode() != 500 {
		t.Fatalf("Expected 500, got %d", resp.StatusCode())
	}
	if !strings.Contains(string(resp.Body()), "INTERNAL_ERROR") {
		t.Errorf("Unexpected body %s", resp.Body())
	}
	if got := string(resp.Header.Peek(RequestIDKey)); got != "req-123" {
		t.Errorf("Expected request id req-123, got %q", got)
	}

	panics := logs.FilterMessage("Panic recovered").All()
	if len(panics) != 1 {
		t.Fatalf("Expected 1 panic log, got %d", len(panics))
	}
	if panics[0].ContextMap()["request_id"] != "req-123" {
		t.Errorf("Expected request id on panic log, got %v", panics[0].ContextMap()["request_id"])
	}

	completed := logs.FilterMessage("Request completed with server error").All()
	if len(completed) != 1 {
		t.Fatalf("Expected 1 completion log, got %d", len(completed))
	}
	if status := completed[0].ContextMap()["status"]; status != int64(500) {
		t.Errorf("Expected status 500 in log, got %v", status)
	}
}

func TestRequestLoggerSkipsLiveness(t *testing.T) {
	s, logs := observedServer()

	ut.PerformRequest(s.hertz.Engine, "GET", "/health/live", nil)
	if n := logs.FilterMessage("Request completed").Len(); n != 0 {
		t.Errorf("Expected no log for liveness, got %d", n)
	}

	w := ut.PerformRequest(s.hertz.Engine, "GET", "/api/summary", nil)
	if len(w.Result().Header.Peek(RequestIDKey)) == 0 {
		t.Error("Expected generated request id")
	}
	if n := logs.FilterMessage("Request completed").Len(); n != 1 {
		t.Errorf("Expected 1 request log, got %d", n)
	}
}

func TestHertzZapAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewHertzZapAdapter(zap.New(core))

	adapter.Infof("listening on %s", "127.0.0.1:8501")
	adapter.CtxWarnf(context.Background(), "slow %d", 3)
	adapter.Fatal("fatal", " but kept")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "listening on 127.0.0.1:8501" || entries[0].Level != zapcore.InfoLevel {
		t.Errorf("Unexpected entry %+v", entries[0].Entry)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("Expected warn level, got %s", entries[1].Level)
	}
	if entries[2].Message != "fatal but kept" || entries[2].Level != zapcore.ErrorLevel {
		t.Errorf("Unexpected entry %+v", entries[2].Entry)
	}
	if entries[0].LoggerName != "hertz" {
		t.Errorf("Expected hertz logger name, got %s", entries[0].LoggerName)
	}
}
