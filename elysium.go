package elysium

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/elysium/internal/adapters/env"
	"github.com/3-lines-studio/elysium/internal/adapters/fs"
	adapterhttp "github.com/3-lines-studio/elysium/internal/adapters/http"
	"github.com/3-lines-studio/elysium/internal/core"
	"github.com/3-lines-studio/elysium/internal/logging"
	"github.com/3-lines-studio/elysium/internal/reload"
	"github.com/3-lines-studio/elysium/internal/render"
	"github.com/3-lines-studio/elysium/internal/types"
	"github.com/3-lines-studio/elysium/internal/usecase"
)

type (
	PageOption  = types.PageOption
	PageContext = types.PageContext
	RenderFunc  = types.RenderFunc
	PropsLoader = types.PropsLoader
	Redirect    = types.Redirect
)

type App struct {
	router   *chi.Mux
	service  *usecase.PageService
	logger   *slog.Logger
	files    fs.FileSystem
	hub      *reload.Hub
	defaults usecase.LayoutDefaults
	newIDs   func() IDGenerator
	isDev    bool
}

type Option func(*App)

// WithAssetsFS serves files below root in fsys under /public.
func WithAssetsFS(fsys iofs.FS, root string) Option {
	return func(a *App) {
		a.files = fs.NewEmbedFileSystem(fsys, root)
	}
}

// WithPublicDir serves a directory on disk under /public.
func WithPublicDir(dir string) Option {
	return func(a *App) {
		a.files = fs.NewOSFileSystem(dir)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithDev overrides the ELYSIUM_DEV environment switch.
func WithDev(dev bool) Option {
	return func(a *App) {
		a.isDev = dev
	}
}

// WithLayoutStylesheet adds a stylesheet to every page.
func WithLayoutStylesheet(href string) Option {
	return func(a *App) {
		a.defaults.Stylesheets = append(a.defaults.Stylesheets, href)
	}
}

// WithLayoutScript adds a deferred script to every page.
func WithLayoutScript(src string) Option {
	return func(a *App) {
		a.defaults.Scripts = append(a.defaults.Scripts, src)
	}
}

// WithIDGenerator sets the factory called once per render for generated
// element ids, e.g. a seeded NewRandomIDs for short random tokens. The
// default is a fresh counter per render (input-1, input-2, ...).
func WithIDGenerator(fn func() IDGenerator) Option {
	return func(a *App) {
		a.newIDs = fn
	}
}

// NewRandomIDs returns a generator of 9-character base-36 tokens seeded
// with seed.
func NewRandomIDs(seed uint64) IDGenerator {
	return core.NewRandomIDs(seed)
}

// New builds an App. Without WithLogger it logs through a slog logger
// configured from ELYSIUM_LOG_LEVEL and ELYSIUM_LOG_FORMAT.
func New(opts ...Option) *App {
	a := &App{
		isDev: env.IsDev(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.FromEnv()
	}

	a.service = usecase.NewPageService(render.HTML{}, a.logger, a.defaults).WithIDs(a.newIDs)
	a.router = adapterhttp.NewRouter(a.logger)
	a.router.Handle(adapterhttp.PublicPrefix+"/*", adapterhttp.NewAssetHandler(a.files, a.isDev))

	if a.isDev {
		a.hub = reload.NewHub()
		a.router.Handle(reload.Path, adapterhttp.NewReloadHandler(a.hub))
	}

	return a
}

// Page builds a handler that renders fn inside the document layout.
func (a *App) Page(fn RenderFunc, opts ...PageOption) http.Handler {
	config := types.PageConfig{Render: fn}
	for _, opt := range opts {
		opt(&config)
	}
	return adapterhttp.NewPageHandler(a.service, config, a.isDev, a.logger)
}

func (a *App) Handle(pattern string, handler http.Handler) {
	a.router.Handle(routePattern(pattern), handler)
}

// Method registers handler for a single HTTP method, e.g. POST form actions.
func (a *App) Method(method, pattern string, handler http.Handler) {
	a.router.Method(method, routePattern(pattern), handler)
}

func routePattern(pattern string) string {
	pattern = core.NormalizePath(pattern)
	if err := core.ValidateRoutePath(pattern); err != nil {
		panic(fmt.Sprintf("elysium: invalid route %q: %v", pattern, err))
	}
	return pattern
}

func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) IsDev() bool {
	return a.isDev
}

// Watch triggers a browser reload whenever a file below dirs changes. It
// blocks until ctx is done and is a no-op outside dev mode.
func (a *App) Watch(ctx context.Context, dirs ...string) error {
	if !a.isDev || len(dirs) == 0 {
		<-ctx.Done()
		return nil
	}
	return reload.NewWatcher(a.hub, a.logger, dirs...).Run(ctx)
}

func WithLoader(loader PropsLoader) PageOption {
	return types.WithLoader(loader)
}

func WithTitle(title string) PageOption {
	return types.WithTitle(title)
}

func WithStylesheet(href string) PageOption {
	return types.WithStylesheet(href)
}

func WithScript(src string) PageOption {
	return types.WithScript(src)
}
