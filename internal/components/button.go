package components

import "github.com/3-lines-studio/elysium/internal/core"

type ButtonConfig struct {
	Type      string
	Variant   string
	Size      string
	Disabled  bool
	OnClick   core.Handler
	Children  []*core.Node
	ClassName string
	Rest      map[string]string
}

func (c ButtonConfig) normalize() ButtonConfig {
	if c.Type == "" {
		c.Type = "button"
	}
	if !ButtonVariants.Has(c.Variant) {
		c.Variant = ButtonVariants.Default
	}
	if !ButtonSizes.Has(c.Size) {
		c.Size = ButtonSizes.Default
	}
	return c
}

// ButtonClasses composes base, variant, size, disabled state and the
// caller's ClassName, in that order.
func ButtonClasses(c ButtonConfig) string {
	return core.Classes(
		buttonBase,
		ButtonVariants.Resolve(c.Variant),
		ButtonSizes.Resolve(c.Size),
		core.DisabledClasses(c.Disabled, ButtonDisabledClasses, ButtonEnabledClasses),
		c.ClassName,
	)
}

func Button(c ButtonConfig) *core.Node {
	c = c.normalize()

	attrs := core.Attributes{}.
		Set("type", c.Type).
		Set("class", ButtonClasses(c)).
		SetIf(c.Disabled, "disabled").
		Merge(c.Rest)

	return core.El("button", attrs, c.Children...).
		On("click", core.Guard(c.Disabled, c.OnClick))
}
