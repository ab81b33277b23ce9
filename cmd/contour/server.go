package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/contourkit/contour"
	"github.com/contourkit/contour/internal/config"
	"github.com/contourkit/contour/raster"
)

// server renders contours on request. Generated contours are memoized per
// canvas in a shared cache, so repeated page loads at the same size cost a
// map lookup.
type server struct {
	cfg    *config.Config
	cache  *contour.Cache
	style  contour.Style
	logger *zap.Logger
}

func newServer(cfg *config.Config, logger *zap.Logger) *server {
	return &server{
		cfg:    cfg,
		cache:  contour.NewCache(cfg.NewGenerator(), cfg.Cache.Size),
		style:  cfg.ContourStyle(),
		logger: logger,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /contours.svg", s.handleSVG)
	mux.HandleFunc("GET /contours.png", s.handlePNG)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// canvas is the validated canvas of a request.
type canvas struct {
	width, height float64
	levels        int
}

var errBadRequest = errors.New("bad request")

// parseCanvas reads w, h and levels from the query, falling back to the
// configured canvas for missing parameters.
func (s *server) parseCanvas(q url.Values) (canvas, error) {
	c := canvas{
		width:  s.cfg.Canvas.Width,
		height: s.cfg.Canvas.Height,
		levels: s.cfg.Canvas.Levels,
	}
	dim := func(name string, dst *float64) error {
		v := q.Get(name)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || f <= 0 || f > s.cfg.Server.MaxDimension {
			return fmt.Errorf("%w: %s must be in (0, %g]", errBadRequest, name, s.cfg.Server.MaxDimension)
		}
		*dst = f
		return nil
	}
	if err := dim("w", &c.width); err != nil {
		return c, err
	}
	if err := dim("h", &c.height); err != nil {
		return c, err
	}
	if v := q.Get("levels"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > s.cfg.Server.MaxLevels {
			return c, fmt.Errorf("%w: levels must be in [1, %d]", errBadRequest, s.cfg.Server.MaxLevels)
		}
		c.levels = n
	}
	return c, nil
}

func (s *server) contours(w http.ResponseWriter, r *http.Request) (canvas, []contour.Contour, bool) {
	c, err := s.parseCanvas(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return c, nil, false
	}
	cs, err := s.cache.Contours(c.width, c.height, c.levels)
	if err != nil {
		s.logger.Error("Generating contours failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return c, nil, false
	}
	s.logger.Debug("Serving contours",
		zap.String("path", r.URL.Path),
		zap.Float64("width", c.width),
		zap.Float64("height", c.height),
		zap.Int("levels", c.levels),
		zap.Int("paths", len(cs)))
	return c, cs, true
}

func (s *server) handleSVG(w http.ResponseWriter, r *http.Request) {
	c, cs, ok := s.contours(w, r)
	if !ok {
		return
	}
	s.respond(w, "image/svg+xml", func(buf *bytes.Buffer) error {
		return contour.WriteDocument(buf, c.width, c.height, cs, s.style)
	})
}

func (s *server) handlePNG(w http.ResponseWriter, r *http.Request) {
	c, cs, ok := s.contours(w, r)
	if !ok {
		return
	}
	s.respond(w, "image/png", func(buf *bytes.Buffer) error {
		return raster.WritePNG(buf, cs, int(math.Ceil(c.width)), int(math.Ceil(c.height)), s.style)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.cache.Stats()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok entries=%d hits=%d misses=%d\n", st.Entries, st.Hits, st.Misses)
}

// respond renders into a buffer first so that a rendering error can still be
// reported with a proper status code.
func (s *server) respond(w http.ResponseWriter, contentType string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error("Rendering failed", zap.Error(err))
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
