package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/control"
	"github.com/atikulmunna/agribot/internal/export"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/plans"
)

func abortError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleHealth(c *gin.Context) {
	stats := s.sess.Stats.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime":         stats.Uptime,
		"eps":            stats.EPS,
		"feed_state":     s.sess.Feed.State(),
		"telemetry":      s.sess.Station.Running(),
		"subscribers":    s.sess.Hub.Subscribers(),
		"dropped_events": s.sess.Hub.Dropped(),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Stats.Snapshot())
}

func (s *Server) handleTelemetry(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Station.Snapshot())
}

// handleListLogs returns the buffer, optionally filtered by ?level=a,b.
func (s *Server) handleListLogs(c *gin.Context) {
	entries := s.sess.Buffer.Snapshot()

	if raw := c.Query("level"); raw != "" {
		want := make(map[model.Level]bool)
		for _, part := range strings.Split(raw, ",") {
			l, err := model.ParseLevel(part)
			if err != nil {
				abortError(c, http.StatusBadRequest, err)
				return
			}
			want[l] = true
		}
		filtered := entries[:0]
		for _, e := range entries {
			if want[e.Level] {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":    entries,
		"count":      len(entries),
		"capacity":   s.sess.Buffer.Capacity(),
		"feed_state": s.sess.Feed.State(),
	})
}

type appendRequest struct {
	Level   string `json:"level"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleAppendLog(c *gin.Context) {
	var req appendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, errors.New("invalid payload: message is required"))
		return
	}
	level := model.LevelInfo
	if req.Level != "" {
		l, err := model.ParseLevel(req.Level)
		if err != nil {
			abortError(c, http.StatusBadRequest, err)
			return
		}
		level = l
	}
	c.JSON(http.StatusCreated, s.sess.Buffer.Append(level, req.Message))
}

func (s *Server) handleClearLogs(c *gin.Context) {
	s.sess.Buffer.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleExport(c *gin.Context) {
	now := s.sess.Now()
	c.Header("Content-Disposition", export.ContentDisposition(now))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(s.sess.Buffer.ExportText()))
}

func (s *Server) handleFeedStart(c *gin.Context) {
	// The feed outlives the request, so it must not inherit its context.
	s.sess.Feed.Start(s.sess.Context())
	c.JSON(http.StatusOK, gin.H{"state": s.sess.Feed.State()})
}

func (s *Server) handleFeedStop(c *gin.Context) {
	s.sess.Feed.Stop()
	c.JSON(http.StatusOK, gin.H{"state": s.sess.Feed.State()})
}

type commandRequest struct {
	Command string `json:"command" binding:"required"`
}

func (s *Server) handleCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, errors.New("invalid payload: command is required"))
		return
	}
	entry, err := s.sess.Controller.SendString(req.Command)
	if err != nil {
		if errors.Is(err, control.ErrUnknownCommand) {
			abortError(c, http.StatusBadRequest, err)
			return
		}
		s.logger.Error("command failed", zap.Error(err))
		abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"command":   s.sess.Controller.Last(),
		"entry":     entry,
		"telemetry": s.sess.Station.Snapshot(),
	})
}

// requestLocale resolves ?locale= first, then Accept-Language.
func requestLocale(c *gin.Context) i18n.Locale {
	if q := c.Query("locale"); q != "" {
		if l, err := i18n.ParseLocale(q); err == nil {
			return l
		}
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}

func (s *Server) handleLocales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locales":   s.sess.Catalog.Locales(),
		"preferred": requestLocale(c),
		"session":   s.sess.Locale(),
	})
}

func (s *Server) handleTable(c *gin.Context) {
	locale, err := i18n.ParseLocale(c.Param("locale"))
	if err != nil {
		abortError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, s.sess.Catalog.Table(locale))
}

// handleTranslate never fails on an unknown key: the key is its own
// fallback. Unknown locales fall back the same way.
func (s *Server) handleTranslate(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{
		"locale": c.Param("locale"),
		"key":    key,
		"value":  s.sess.Catalog.T(c.Param("locale"), key),
	})
}

type planView struct {
	plans.Plan
	Name          string `json:"name"`
	YearlySavings int    `json:"yearly_savings"`
}

func (s *Server) handlePlans(c *gin.Context) {
	locale := requestLocale(c)
	out := make([]planView, 0, len(plans.Catalog))
	for _, p := range plans.Catalog {
		out = append(out, planView{
			Plan:          p,
			Name:          s.sess.Catalog.Translate(locale, p.NameKey),
			YearlySavings: plans.YearlySavings(p),
		})
	}
	c.JSON(http.StatusOK, gin.H{"locale": locale, "plans": out})
}

type checkoutRequest struct {
	Cycle string `json:"cycle"`
}

func (s *Server) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortError(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
	}
	cycle, err := plans.ParseCycle(req.Cycle)
	if err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}

	err = plans.Checkout(c.Param("plan"), cycle)
	switch {
	case errors.Is(err, plans.ErrUnknownPlan):
		abortError(c, http.StatusNotFound, err)
	case errors.Is(err, plans.ErrPaymentUnavailable):
		abortError(c, http.StatusNotImplemented, err)
	case err != nil:
		abortError(c, http.StatusBadRequest, err)
	default:
		c.Status(http.StatusNoContent)
	}
}
