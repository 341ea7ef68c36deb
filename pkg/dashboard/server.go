// pkg/dashboard/server.go
package dashboard

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/config"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// Server serves the interactive dashboard over a read-only catalog. Every
// request recomputes the filter, aggregates and charts from scratch.
type Server struct {
	catalog   *catalog.Catalog
	countries []string
	config    *config.Config
	logger    *zap.Logger
	hertz     *server.Hertz
}

// NewServer creates the hertz server and registers the routes
func NewServer(c *catalog.Catalog, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		catalog:   c,
		countries: c.Countries(),
		config:    cfg,
		logger:    logger.Named("dashboard"),
		hertz:     server.New(server.WithHostPorts(cfg.Dashboard.ListenAddr)),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	h := s.hertz
	// RequestLogger wraps Recovery so recovered panics are still logged
	h.Use(RequestLogger(s.logger))
	h.Use(Recovery(s.logger))

	h.GET("/", s.Index)
	h.GET("/charts", s.Charts)
	h.GET("/api/summary", s.Summary)
	h.GET("/health/live", s.Liveness)
}

// Run serves until Shutdown is called
func (s *Server) Run() error {
	s.logger.Info("Dashboard listening",
		zap.String("address", s.config.Dashboard.ListenAddr),
		zap.Int("rows", s.catalog.Len()))
	return s.hertz.Run()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hertz.Shutdown(ctx)
}

// selection reads the control state from the query string
func (s *Server) selection(c *app.RequestContext) catalog.Selection {
	var countries []string
	c.QueryArgs().VisitAll(func(key, value []byte) {
		if string(key) == ParamCountry {
			countries = append(countries, string(value))
		}
	})

	return catalog.ParseSelection(s.catalog,
		c.Query(ParamType),
		c.Query(ParamYearMin),
		c.Query(ParamYearMax),
		countries,
		s.config.Dashboard.DefaultYearFrom,
	)
}

// Index renders the controls, headline metrics and raw table
func (s *Server) Index(ctx context.Context, c *app.RequestContext) {
	sel := s.selection(c)
	filtered := catalog.Filter(s.catalog, sel)
	rows, truncated := Table(filtered, s.config.Dashboard.TableRowLimit)
	min, max, _ := s.catalog.YearBounds()

	selected := make(map[string]bool, len(sel.Countries))
	for _, country := range sel.Countries {
		selected[country] = true
	}

	var buf bytes.Buffer
	err := renderIndex(&buf, pageData{
		Selection:     sel,
		TypeOptions:   TypeOptions,
		YearMin:       min,
		YearMax:       max,
		Countries:     s.countries,
		Selected:      selected,
		Totals:        aggregate.Headline(filtered),
		Empty:         filtered.Empty(),
		ChartsQuery:   templateURL(EncodeSelection(sel)),
		Rows:          rows,
		Truncated:     truncated,
		FilteredCount: filtered.Len(),
		RowLimit:      s.config.Dashboard.TableRowLimit,
	})
	if err != nil {
		s.fail(c, fmt.Errorf("failed to render index: %w", err))
		return
	}

	c.Data(consts.StatusOK, contentTypeHTML, buf.Bytes())
}

// Charts renders the chart panels for the selection
func (s *Server) Charts(ctx context.Context, c *app.RequestContext) {
	sel := s.selection(c)
	filtered := catalog.Filter(s.catalog, sel)
	summary := Summarize(filtered, sel, s.config.TopN)

	var buf bytes.Buffer
	if err := renderCharts(&buf, Panels(summary, aggregate.HasMovies(filtered))); err != nil {
		s.fail(c, err)
		return
	}

	c.Data(consts.StatusOK, contentTypeHTML, buf.Bytes())
}

// Summary returns the aggregates for the selection as JSON
func (s *Server) Summary(ctx context.Context, c *app.RequestContext) {
	sel := s.selection(c)
	filtered := catalog.Filter(s.catalog, sel)

	body, err := sonic.Marshal(Summarize(filtered, sel, s.config.TopN))
	if err != nil {
		s.fail(c, fmt.Errorf("failed to encode summary: %w", err))
		return
	}

	c.Data(consts.StatusOK, contentTypeJSON, body)
}

// Liveness reports that the process is serving
func (s *Server) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status": "alive",
	})
}

func (s *Server) fail(c *app.RequestContext, err error) {
	s.logger.Error("Request failed",
		zap.String("request_id", GetRequestID(c)),
		zap.Error(err))
	c.JSON(consts.StatusInternalServerError, utils.H{
		"code":    "INTERNAL_ERROR",
		"message": "Internal server error",
	})
}
