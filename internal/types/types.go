package types

import (
	"net/http"

	"github.com/3-lines-studio/elysium/internal/core"
)

type PropsLoader func(*http.Request) (map[string]any, error)

type RedirectError interface {
	RedirectURL() string
	RedirectStatusCode() int
}

// PageContext is handed to a page's render function once per request.
type PageContext struct {
	Request *http.Request
	Props   map[string]any
	IDs     core.IDGenerator
}

type RenderFunc func(*PageContext) (*core.Node, error)

type PageConfig struct {
	Title       string
	Render      RenderFunc
	PropsLoader PropsLoader
	Stylesheets []string
	Scripts     []string
}

type PageOption func(*PageConfig)

func WithLoader(loader PropsLoader) PageOption {
	return func(c *PageConfig) {
		c.PropsLoader = loader
	}
}

func WithTitle(title string) PageOption {
	return func(c *PageConfig) {
		c.Title = title
	}
}

func WithStylesheet(href string) PageOption {
	return func(c *PageConfig) {
		c.Stylesheets = append(c.Stylesheets, href)
	}
}

func WithScript(src string) PageOption {
	return func(c *PageConfig) {
		c.Scripts = append(c.Scripts, src)
	}
}

// Prop returns props[key] as a string, or "" when missing or not a string.
func (p *PageContext) Prop(key string) string {
	if p == nil || p.Props == nil {
		return ""
	}
	s, _ := p.Props[key].(string)
	return s
}

// Redirect is a RedirectError a loader can return to send the client elsewhere.
type Redirect struct {
	URL    string
	Status int
}

func (r *Redirect) Error() string           { return "redirect to " + r.URL }
func (r *Redirect) RedirectURL() string     { return r.URL }
func (r *Redirect) RedirectStatusCode() int { return r.Status }
