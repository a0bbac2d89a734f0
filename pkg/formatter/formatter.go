package formatter

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/chunker"
	"keptn/promotion-formatter/pkg/model"
	"keptn/promotion-formatter/pkg/replacer"
)

// Formatter renders a promotion batch into output lines.
type Formatter struct {
	templates model.LineTemplates
	groupSize int
}

func NewFormatter(templates model.LineTemplates, groupSize int) Formatter {
	return Formatter{templates: templates, groupSize: groupSize}
}

// Format returns the instance line, the path line and one line per target group.
func (f Formatter) Format(batch model.PromotionBatch) (lines []string, err error) {
	promotionType, err := model.ParsePromotionType(batch.PromotionType)
	if err != nil {
		return nil, err
	}
	lineTemplate, err := f.templates.ForType(promotionType)
	if err != nil {
		return nil, err
	}
	if f.templates.Instance == nil || f.templates.Path == nil {
		return nil, errors.New("instance and path line templates are required")
	}

	bindings := batch.Bindings()
	instanceLine, err := replacer.Render(*f.templates.Instance, bindings)
	if err != nil {
		return nil, fmt.Errorf("rendering instance line: %w", err)
	}
	pathLine, err := replacer.Render(*f.templates.Path, bindings)
	if err != nil {
		return nil, fmt.Errorf("rendering path line: %w", err)
	}
	lines = append(lines, instanceLine, pathLine)

	groups := chunker.Chunk(batch.Targets, f.groupSize)
	for i, g := range groups {
		bindings[model.BindingTargets] = g.String()
		line, err := replacer.Render(lineTemplate, bindings)
		if err != nil {
			return nil, fmt.Errorf("rendering target group %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	logger.WithField("func", "Format").Infof("rendered batch %s with %d target groups as %s", batch.ID, len(groups), promotionType)
	return lines, nil
}
