package fireworks

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/daisuke8000/grass-fireworks/internal/platform/errors"
	"github.com/daisuke8000/grass-fireworks/internal/level"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/platform/httpx"
)

func (s *Server) handleFireworks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := UserParams{Username: strings.TrimSpace(query.Get("user"))}
	var err error
	if params.Width, err = intParam(query.Get("width"), apperrors.CodeInvalidWidth, "width"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if params.Height, err = intParam(query.Get("height"), apperrors.CodeInvalidHeight, "height"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if params.Theme, err = themeParam(query.Get("theme")); err != nil {
		httpx.WriteError(w, err)
		return
	}

	doc, err := s.service.RenderUser(httpx.RequestContext(r), params)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteSVG(w, http.StatusOK, doc)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params DemoParams
	var err error
	if params.Commits, err = intParam(query.Get("commits"), apperrors.CodeInvalidCommits, "commits"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if params.Width, err = intParam(query.Get("width"), apperrors.CodeInvalidWidth, "width"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if params.Height, err = intParam(query.Get("height"), apperrors.CodeInvalidHeight, "height"); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if params.Theme, err = themeParam(query.Get("theme")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if raw := strings.TrimSpace(query.Get("level")); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			httpx.WriteError(w, apperrors.New(apperrors.CodeInvalidLevel, "level must be an integer"))
			return
		}
		lvl, parseErr := level.Parse(n)
		if parseErr != nil {
			httpx.WriteError(w, apperrors.New(apperrors.CodeInvalidLevel, parseErr.Error()))
			return
		}
		params.Level = &lvl
	}
	if raw := strings.TrimSpace(query.Get("seed")); raw != "" {
		n, convErr := strconv.ParseInt(raw, 10, 32)
		if convErr != nil {
			httpx.WriteError(w, apperrors.New(apperrors.CodeInvalidSeed, "seed must be a 32-bit integer"))
			return
		}
		seed := int32(n)
		params.Seed = &seed
	}
	params.Cascade = boolParam(query.Get("cascade"))

	doc, err := s.service.RenderDemo(httpx.RequestContext(r), params)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteSVG(w, http.StatusOK, doc)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// intParam parses an optional non-negative integer query value. Empty
// returns zero, which callers treat as "use the default".
func intParam(raw string, code apperrors.Code, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(code, fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

func themeParam(raw string) (*level.Theme, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	theme, err := level.ParseTheme(raw)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidTheme, err.Error())
	}
	return &theme, nil
}

func boolParam(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
