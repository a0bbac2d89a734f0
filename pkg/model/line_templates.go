package model

import "fmt"

// LineTemplates holds the configured output lines. Fields are pointers so that
// layered template files only override what they actually define.
type LineTemplates struct {
	Instance          *string `yaml:"instance"`
	Path              *string `yaml:"path"`
	PromoteImages     *string `yaml:"promote_images"`
	PromoteConfigMaps *string `yaml:"promote_config_maps"`
	PromoteSecrets    *string `yaml:"promote_secrets"`
	PromoteTemplates  *string `yaml:"promote_templates"`
}

// Merge returns a copy of t with every field set in other taking precedence.
func (t LineTemplates) Merge(other LineTemplates) (ret LineTemplates) {
	ret = t
	if other.Instance != nil {
		ret.Instance = other.Instance
	}
	if other.Path != nil {
		ret.Path = other.Path
	}
	if other.PromoteImages != nil {
		ret.PromoteImages = other.PromoteImages
	}
	if other.PromoteConfigMaps != nil {
		ret.PromoteConfigMaps = other.PromoteConfigMaps
	}
	if other.PromoteSecrets != nil {
		ret.PromoteSecrets = other.PromoteSecrets
	}
	if other.PromoteTemplates != nil {
		ret.PromoteTemplates = other.PromoteTemplates
	}
	return ret
}

// ForType selects the line template used for each target group of the given type.
func (t LineTemplates) ForType(promotionType PromotionType) (string, error) {
	var tmpl *string
	switch promotionType {
	case Images:
		tmpl = t.PromoteImages
	case Secrets:
		tmpl = t.PromoteSecrets
	case ConfigMaps:
		tmpl = t.PromoteConfigMaps
	case Templates:
		tmpl = t.PromoteTemplates
	default:
		return "", &UnrecognizedPromotionTypeError{Value: string(promotionType)}
	}
	if tmpl == nil {
		return "", fmt.Errorf("no line template configured for promotion type %s", promotionType)
	}
	return *tmpl, nil
}

// TemplateKey returns the yaml key holding the line template for the given type.
func TemplateKey(promotionType PromotionType) string {
	switch promotionType {
	case ConfigMaps:
		return "promote_config_maps"
	default:
		return "promote_" + string(promotionType)
	}
}

// LineTemplatesValidator reports every problem of a template configuration.
type LineTemplatesValidator interface {
	Validate(templates LineTemplates) (validationErrors []string)
}
