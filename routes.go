package main

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Zachkp/hustlr/log"
	"github.com/Zachkp/hustlr/pages"
	"github.com/Zachkp/hustlr/parallax"
	"github.com/Zachkp/hustlr/tracking"
	"github.com/Zachkp/hustlr/typeface"
	"github.com/Zachkp/hustlr/typewriter"
	"github.com/Zachkp/hustlr/waitlist"
	"github.com/gin-gonic/gin"
)

// site holds everything the handlers share.
type site struct {
	logger    *slog.Logger
	submitter waitlist.Submitter
	// tracker is nil when visitor tracking is off.
	tracker      *tracking.Tracker
	interval     time.Duration
	staticDir    string
	layout       parallax.Layout
	keyframeStep float64
	now          func() time.Time
}

type signup struct {
	Email string `form:"email" binding:"required,email"`
	Type  string `form:"type"`
}

func newRouter(s *site) *gin.Engine {
	parallaxCSS := parallax.Stylesheet(s.layout, s.keyframeStep) + pages.CounterCSS(5, pages.CounterDuration)
	fontsCSS := typeface.CSS(typeface.Faces)

	r := gin.New()
	r.Use(gin.Recovery(), log.RequestLogger(s.logger))
	if s.tracker != nil {
		r.Use(s.tracker.Middleware())
	}

	r.Static("/images", filepath.Join(s.staticDir, "images"))
	r.Static("/fonts", filepath.Join(s.staticDir, "fonts"))

	css := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Header("Cache-Control", "public, max-age=3600")
			c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(body))
		}
	}
	r.GET("/assets/parallax.css", css(parallaxCSS))
	r.GET("/assets/fonts.css", css(fontsCSS))
	r.GET("/assets/site.css", css(pages.SiteCSS))

	r.GET("/", func(c *gin.Context) {
		c.Render(http.StatusOK, pages.Render(pages.Home(pages.HomeData{
			Tab:            pages.ParseTab(c.Query("tab")),
			Step:           pages.ParseStep(c.Query("step")),
			HeadlineStream: "/hero/headline",
		})))
	})
	r.GET("/top5", func(c *gin.Context) {
		c.Render(http.StatusOK, pages.Render(pages.Top5()))
	})

	// HTMX fragments
	r.GET("/offers", func(c *gin.Context) {
		c.Render(http.StatusOK, pages.Render(pages.Offers(pages.ParseTab(c.Query("tab")))))
	})
	r.GET("/how-it-works", func(c *gin.Context) {
		c.Render(http.StatusOK, pages.Render(pages.HowItWorks(pages.ParseTab(c.Query("tab")), pages.ParseStep(c.Query("step")))))
	})

	r.GET("/get-started", func(c *gin.Context) {
		c.Render(http.StatusOK, pages.Render(pages.GetStarted(waitlist.NewForm(c.Query("type")))))
	})
	r.POST("/get-started", s.submit)

	r.GET("/hero/headline", s.headline)
	r.GET("/api/parallax", s.parallaxFrame)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// renderForm answers with the fragment for HTMX requests and the whole page
// otherwise.
func renderForm(c *gin.Context, status int, f waitlist.Form) {
	if c.GetHeader("HX-Request") == "true" {
		c.Render(status, pages.Render(pages.Waitlist(f)))
		return
	}
	c.Render(status, pages.Render(pages.GetStarted(f)))
}

func (s *site) submit(c *gin.Context) {
	logger := log.LoggerFromContext(c.Request.Context())

	var in signup
	if err := c.ShouldBind(&in); err != nil {
		logger.Debug("invalid waitlist submission", slog.Any("err", err))
		f := waitlist.Form{
			Email: c.PostForm("email"),
			Role:  waitlist.ParseRole(c.PostForm("type")),
			Error: "Please enter a valid email address.",
		}
		renderForm(c, http.StatusUnprocessableEntity, f)
		return
	}

	f := waitlist.Form{Email: in.Email, Role: waitlist.ParseRole(in.Type)}
	f, err := f.Submit(c.Request.Context(), s.submitter, s.now())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error("waitlist submission failed", slog.Any("err", err))
		renderForm(c, http.StatusBadGateway, f)
		return
	}
	logger.Info("waitlist sign-up", slog.String("role", string(f.Role)))
	renderForm(c, http.StatusOK, f)
}

// headline streams the typewriter frames of the hero headline. Every
// connection types from the start; closing it stops the ticker.
func (s *site) headline(c *gin.Context) {
	logger := log.LoggerFromContext(c.Request.Context())
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	seq := typewriter.NewAfter(pages.HeroHeadline, pages.HeroBreakAfter)
	err := typewriter.Run(c.Request.Context(), seq, s.interval, func(f typewriter.Frame) error {
		html, err := pages.String(pages.Headline(f))
		if err != nil {
			return err
		}
		c.SSEvent("frame", html)
		c.Writer.Flush()
		return nil
	})
	switch {
	case errors.Is(err, context.Canceled):
		logger.Debug("headline stream closed by client")
		return
	case err != nil:
		logger.Error("headline stream failed", slog.Any("err", err))
		return
	}
	c.SSEvent("done", "")
	c.Writer.Flush()
}

func (s *site) parallaxFrame(c *gin.Context) {
	scroll, err := strconv.ParseFloat(c.Query("scroll"), 64)
	if err != nil || math.IsNaN(scroll) || math.IsInf(scroll, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scroll must be a number"})
		return
	}
	f := s.layout.FrameAt(scroll)
	c.JSON(http.StatusOK, gin.H{
		"frame":            f,
		"background_color": f.BackgroundColor(),
		"offers_clickable": f.OffersClickable(),
	})
}
