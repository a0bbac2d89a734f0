package replacer

import (
	"fmt"
	"strings"
)

// MissingBindingError is returned when a placeholder has no value in the binding map.
type MissingBindingError struct {
	Name     string
	Template string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("no value bound for placeholder {%s} in template %q", e.Name, e.Template)
}

// MalformedTemplateError is returned for unbalanced, nested or empty placeholders.
type MalformedTemplateError struct {
	Template string
	Offset   int
	Reason   string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template %q at offset %d: %s", e.Template, e.Offset, e.Reason)
}

// Render substitutes every {name} in template with its value from bindings.
// Doubled braces ({{ and }}) produce literal braces. Keys in bindings that the
// template does not reference are ignored.
func Render(template string, bindings map[string]string) (string, error) {
	var b strings.Builder
	err := scan(template, func(literal string) {
		b.WriteString(literal)
	}, func(name string) error {
		v, ok := bindings[name]
		if !ok {
			return &MissingBindingError{Name: name, Template: template}
		}
		b.WriteString(v)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Placeholders returns the placeholder names of template in first-seen order.
func Placeholders(template string) (names []string, err error) {
	seen := make(map[string]bool)
	err = scan(template, func(string) {}, func(name string) error {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	return names, err
}

func scan(template string, literal func(string), placeholder func(string) error) error {
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				literal("{")
				i++
				continue
			}
			end := strings.IndexAny(template[i+1:], "{}")
			if end < 0 {
				return &MalformedTemplateError{Template: template, Offset: i, Reason: "unclosed '{'"}
			}
			end += i + 1
			if template[end] == '{' {
				return &MalformedTemplateError{Template: template, Offset: end, Reason: "nested '{'"}
			}
			name := template[i+1 : end]
			if name == "" {
				return &MalformedTemplateError{Template: template, Offset: i, Reason: "empty placeholder"}
			}
			if err := placeholder(name); err != nil {
				return err
			}
			i = end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				literal("}")
				i++
				continue
			}
			return &MalformedTemplateError{Template: template, Offset: i, Reason: "unmatched '}'"}
		default:
			next := strings.IndexAny(template[i:], "{}")
			if next < 0 {
				literal(template[i:])
				return nil
			}
			literal(template[i : i+next])
			i += next - 1
		}
	}
	return nil
}
