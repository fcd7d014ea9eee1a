package elysium

import (
	"github.com/3-lines-studio/elysium/internal/components"
	"github.com/3-lines-studio/elysium/internal/core"
	"github.com/3-lines-studio/elysium/internal/render"
)

type (
	Node        = core.Node
	Attributes  = core.Attributes
	Event       = core.Event
	Handler     = core.Handler
	IDGenerator = core.IDGenerator

	ButtonConfig = components.ButtonConfig
	InputConfig  = components.InputConfig
	CardConfig   = components.CardConfig
	LayoutConfig = components.LayoutConfig
)

var (
	Button = components.Button
	Input  = components.Input
	Card   = components.Card
	Layout = components.Layout

	El       = core.El
	Text     = core.Text
	Fragment = core.Fragment
	Classes  = core.Classes

	RenderString = render.String
)
