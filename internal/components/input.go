package components

import "github.com/3-lines-studio/elysium/internal/core"

const inputIDPrefix = "input-"

type InputConfig struct {
	Type        string
	Label       string
	ID          string
	Name        string
	Value       string
	Placeholder string
	Required    bool
	Disabled    bool
	Error       string
	HelperText  string
	OnChange    core.Handler
	ClassName   string
	Rest        map[string]string

	// IDs generates the id when ID is empty. core.DefaultIDs is used when nil.
	// Generated ids take the form input-<n> from a per-page counter, so
	// explicit IDs on the same page must not use that form.
	IDs core.IDGenerator
}

func (c InputConfig) normalize() InputConfig {
	if c.Type == "" {
		c.Type = "text"
	}
	if c.ID == "" {
		ids := c.IDs
		if ids == nil {
			ids = core.DefaultIDs
		}
		c.ID = ids.NextID(inputIDPrefix)
	}
	if c.Name == "" {
		c.Name = c.ID
	}
	return c
}

func InputClasses(c InputConfig) string {
	border := inputNormal
	if c.Error != "" {
		border = inputInvalid
	}
	return core.Classes(
		inputBase,
		border,
		core.DisabledClasses(c.Disabled, InputDisabledClasses, InputEnabledClasses),
		c.ClassName,
	)
}

func Input(c InputConfig) *core.Node {
	c = c.normalize()

	attrs := core.Attributes{}.
		Set("type", c.Type).
		Set("id", c.ID).
		Set("name", c.Name).
		Set("value", c.Value).
		SetNonEmpty("placeholder", c.Placeholder).
		Set("class", InputClasses(c)).
		SetIf(c.Required, "required").
		SetIf(c.Disabled, "disabled")

	trailing := inputMessage(c)
	if trailing != nil {
		describedBy, _ := trailing.Attrs.Get("id")
		attrs = attrs.Set("aria-describedby", describedBy)
		if c.Error != "" {
			attrs = attrs.Set("aria-invalid", "true")
		}
	}
	attrs = attrs.Merge(c.Rest)

	input := core.El("input", attrs).
		On("change", core.Guard(c.Disabled, c.OnChange))

	return core.El("div", core.Attributes{}.Set("class", inputWrapper),
		inputLabel(c),
		input,
		trailing,
	)
}

func inputLabel(c InputConfig) *core.Node {
	if c.Label == "" {
		return nil
	}
	var marker *core.Node
	if c.Required {
		marker = core.El("span", core.Attributes{}.Set("class", requiredClasses), core.Text("*"))
	}
	return core.El("label", core.Attributes{}.Set("for", c.ID).Set("class", labelClasses),
		core.Text(c.Label),
		marker,
	)
}

// inputMessage picks the trailing block. An error always hides helper text.
func inputMessage(c InputConfig) *core.Node {
	switch {
	case c.Error != "":
		return core.El("p",
			core.Attributes{}.Set("id", c.ID+"-error").Set("class", errorClasses),
			core.Text(c.Error),
		)
	case c.HelperText != "":
		return core.El("p",
			core.Attributes{}.Set("id", c.ID+"-helper").Set("class", helperClasses),
			core.Text(c.HelperText),
		)
	}
	return nil
}
