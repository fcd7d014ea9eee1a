package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/3-lines-studio/elysium/internal/components"
	"github.com/3-lines-studio/elysium/internal/core"
	"github.com/3-lines-studio/elysium/internal/types"
)

type ServePageInput struct {
	Config       types.PageConfig
	IsDev        bool
	ReloadScript string
	Request      *http.Request
}

type ServePageOutput struct {
	HTML           string
	RedirectURL    string
	RedirectStatus int
	Props          map[string]any
	Error          error
}

func (o ServePageOutput) IsRedirect() bool {
	return o.RedirectURL != ""
}

// LayoutDefaults are merged into every page rendered by a PageService.
type LayoutDefaults struct {
	Stylesheets []string
	Scripts     []string
}

type PageService struct {
	serializer Serializer
	logger     *slog.Logger
	defaults   LayoutDefaults
	newIDs     func() core.IDGenerator
}

func NewPageService(serializer Serializer, logger *slog.Logger, defaults LayoutDefaults) *PageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageService{
		serializer: serializer,
		logger:     logger,
		defaults:   defaults,
		newIDs:     func() core.IDGenerator { return core.NewCounter() },
	}
}

// WithIDs replaces the per-render id generator factory. A nil fn keeps the
// default fresh core.Counter per render.
func (s *PageService) WithIDs(fn func() core.IDGenerator) *PageService {
	if fn != nil {
		s.newIDs = fn
	}
	return s
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if input.Config.Render == nil {
		return ServePageOutput{Error: fmt.Errorf("page has no render function")}
	}

	props, out, ok := s.loadProps(input)
	if !ok {
		return out
	}

	renderStart := time.Now()
	pc := &types.PageContext{
		Request: input.Request,
		Props:   props,
		IDs:     s.newIDs(),
	}
	body, err := input.Config.Render(pc)
	if err != nil {
		return ServePageOutput{Props: props, Error: fmt.Errorf("render page: %w", err)}
	}

	layout := components.LayoutConfig{
		Title:       input.Config.Title,
		Stylesheets: append(append([]string{}, s.defaults.Stylesheets...), input.Config.Stylesheets...),
		Scripts:     append(append([]string{}, s.defaults.Scripts...), input.Config.Scripts...),
		Children:    []*core.Node{body},
	}
	if input.IsDev {
		layout.ReloadScript = input.ReloadScript
	}

	var buf bytes.Buffer
	if err := s.serializer.Render(&buf, components.Layout(layout)); err != nil {
		return ServePageOutput{Props: props, Error: fmt.Errorf("serialize page: %w", err)}
	}
	s.logger.DebugContext(ctx, "page render timing", "duration", time.Since(renderStart))

	return ServePageOutput{HTML: buf.String(), Props: props}
}

func (s *PageService) loadProps(input ServePageInput) (map[string]any, ServePageOutput, bool) {
	if input.Config.PropsLoader == nil {
		return map[string]any{}, ServePageOutput{}, true
	}

	loaderStart := time.Now()
	props, err := input.Config.PropsLoader(input.Request)
	if err != nil {
		var redirectErr types.RedirectError
		if errors.As(err, &redirectErr) {
			status := redirectErr.RedirectStatusCode()
			if status == 0 {
				status = http.StatusFound
			}
			return nil, ServePageOutput{
				RedirectURL:    redirectErr.RedirectURL(),
				RedirectStatus: status,
			}, false
		}
		return nil, ServePageOutput{Error: fmt.Errorf("load props: %w", err)}, false
	}
	s.logger.Debug("data loader timing", "duration", time.Since(loaderStart))

	if props == nil {
		props = map[string]any{}
	}
	return props, ServePageOutput{}, true
}
