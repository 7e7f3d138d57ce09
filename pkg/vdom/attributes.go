package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// AriaChecked sets the aria-checked attribute. Checkable widget roles
// expect the literal strings "true" and "false", not a bare boolean.
func AriaChecked(checked bool) Attr {
	if checked {
		return attr("aria-checked", "true")
	}
	return attr("aria-checked", "false")
}

// AriaDisabled sets the aria-disabled attribute.
func AriaDisabled(disabled bool) Attr { return attr("aria-disabled", disabled) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// For sets the for attribute on labels.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Misc attributes

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
