package config

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/model"
	"keptn/promotion-formatter/pkg/replacer"
)

type validator struct {
}

func NewValidator() model.LineTemplatesValidator {
	return validator{}
}

type templateField struct {
	key      string
	tmpl     *string
	required bool
}

func (v validator) Validate(templates model.LineTemplates) (validationErrors []string) {
	fields := []templateField{
		{key: "instance", tmpl: templates.Instance, required: true},
		{key: "path", tmpl: templates.Path, required: true},
		{key: model.TemplateKey(model.Images), tmpl: templates.PromoteImages, required: true},
		{key: model.TemplateKey(model.ConfigMaps), tmpl: templates.PromoteConfigMaps, required: true},
		{key: model.TemplateKey(model.Secrets), tmpl: templates.PromoteSecrets, required: true},
		{key: model.TemplateKey(model.Templates), tmpl: templates.PromoteTemplates},
	}
	for _, f := range fields {
		if f.tmpl == nil || *f.tmpl == "" {
			if f.required {
				validationErrors = append(validationErrors, fmt.Sprintf(`"%s" missing`, f.key))
			}
			continue
		}
		names, err := replacer.Placeholders(*f.tmpl)
		if err != nil {
			var malformed *replacer.MalformedTemplateError
			if errors.As(err, &malformed) {
				validationErrors = append(validationErrors, fmt.Sprintf(`"%s" is malformed: %s at offset %d`, f.key, malformed.Reason, malformed.Offset))
			} else {
				validationErrors = append(validationErrors, fmt.Sprintf(`"%s" is malformed: %s`, f.key, err))
			}
			continue
		}
		// instance and path lines are rendered before any target group exists
		if f.key == "instance" || f.key == "path" {
			for _, n := range names {
				if n == model.BindingTargets {
					validationErrors = append(validationErrors, fmt.Sprintf(`"%s" must not reference {%s}`, f.key, model.BindingTargets))
				}
			}
		}
	}
	logger.WithField("func", "Validate").Infof("validation finished with %d validation errors", len(validationErrors))
	return validationErrors
}

// ValidationMismatch lists targets that do not look like the promotion type
// they are promoted as. It is advisory.
type ValidationMismatch struct {
	PromotionType model.PromotionType
	Targets       []string
}

func (m *ValidationMismatch) Error() string {
	switch m.PromotionType {
	case model.Images:
		return fmt.Sprintf("targets without an image tag separator ':': %s", strings.Join(m.Targets, ","))
	default:
		return fmt.Sprintf("targets for %s must not contain ':': %s", m.PromotionType, strings.Join(m.Targets, ","))
	}
}

// ValidateTargets returns the targets that do not fit promotionType, in input
// order. Images need a ':' tag separator, config maps and templates must not
// have one, secrets are not checked.
func ValidateTargets(promotionType model.PromotionType, targets model.TargetList) (invalid []string) {
	var wantColon bool
	switch promotionType {
	case model.Images:
		wantColon = true
	case model.ConfigMaps, model.Templates:
		wantColon = false
	default:
		return nil
	}
	for _, t := range targets.Items() {
		if strings.Contains(t, ":") != wantColon {
			invalid = append(invalid, t)
		}
	}
	logger.WithField("func", "ValidateTargets").Debugf("found %d invalid targets for type %s", len(invalid), promotionType)
	return invalid
}

// CheckTargets wraps ValidateTargets into a *ValidationMismatch, or nil when
// every target is valid.
func CheckTargets(promotionType model.PromotionType, targets model.TargetList) *ValidationMismatch {
	if invalid := ValidateTargets(promotionType, targets); len(invalid) > 0 {
		return &ValidationMismatch{PromotionType: promotionType, Targets: invalid}
	}
	return nil
}
