package model

import (
	"fmt"
	"strings"
)

type PromotionType string

const (
	Images     PromotionType = "images"
	Secrets    PromotionType = "secrets"
	ConfigMaps PromotionType = "config-maps"
	// Templates is kept for older template files, new batches should not use it.
	Templates PromotionType = "templates"
)

var promotionTypeAliases = map[string]PromotionType{
	"image":       Images,
	"images":      Images,
	"secret":      Secrets,
	"secrets":     Secrets,
	"config-map":  ConfigMaps,
	"config-maps": ConfigMaps,
	"config_map":  ConfigMaps,
	"config_maps": ConfigMaps,
	"template":    Templates,
	"templates":   Templates,
}

// UnrecognizedPromotionTypeError is returned for promotion types outside the known aliases.
type UnrecognizedPromotionTypeError struct {
	Value string
}

func (e *UnrecognizedPromotionTypeError) Error() string {
	return fmt.Sprintf("unrecognized promotion type %q, expected one of images, secrets, config-maps, templates", e.Value)
}

// ParsePromotionType maps a user supplied value onto its canonical type.
func ParsePromotionType(raw string) (PromotionType, error) {
	if t, ok := promotionTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t, nil
	}
	return "", &UnrecognizedPromotionTypeError{Value: raw}
}
