package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	keptnv2 "github.com/keptn/go-utils/pkg/lib/v0_2_0"
	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/model"
	"keptn/promotion-formatter/pkg/replacer"
)

const PromotionTaskName = "promotion"

type PromotionTriggeredEventData struct {
	keptnv2.EventData
	Promotion PromotionFields `json:"promotion"`
}

// PromotionFields are the batch fields of a promotion event. Instance and
// Source fall back to the project and stage of the event.
type PromotionFields struct {
	Instance      string     `json:"instance"`
	Source        string     `json:"source"`
	Destination   string     `json:"destination"`
	PromotionType string     `json:"promotion_type"`
	Targets       RawTargets `json:"targets"`
}

// RawTargets accepts either a comma separated string or a list of strings.
type RawTargets string

func (r *RawTargets) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RawTargets(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("targets must be a string or a list of strings: %w", err)
	}
	*r = RawTargets(strings.Join(list, ","))
	return nil
}

// FromEventFile reads a CloudEvent in JSON format and builds a batch from it.
// All fields of the event are available to the templates as extra bindings.
func FromEventFile(path string) (model.PromotionBatch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.PromotionBatch{}, fmt.Errorf("reading event file %s: %w", path, err)
	}
	event := cloudevents.NewEvent()
	if err := json.Unmarshal(raw, &event); err != nil {
		return model.PromotionBatch{}, fmt.Errorf("parsing event file %s: %w", path, err)
	}
	return FromEvent(event)
}

func FromEvent(event cloudevents.Event) (model.PromotionBatch, error) {
	if event.Type() != keptnv2.GetTriggeredEventType(PromotionTaskName) {
		logger.WithField("func", "FromEvent").Warnf("event %s has type %s, expected %s", event.ID(), event.Type(), keptnv2.GetTriggeredEventType(PromotionTaskName))
	}
	data := &PromotionTriggeredEventData{}
	if err := event.DataAs(data); err != nil {
		return model.PromotionBatch{}, fmt.Errorf("failed to parse PromotionTriggeredEventData: %w", err)
	}
	fields := data.Promotion
	if fields.Instance == "" {
		fields.Instance = data.Project
	}
	if fields.Source == "" {
		fields.Source = data.Stage
	}
	extra, err := replacer.ConvertToMap(event)
	if err != nil {
		return model.PromotionBatch{}, err
	}
	batch := model.NewPromotionBatch(fields.Instance, fields.Source, fields.Destination, fields.PromotionType, string(fields.Targets))
	batch.Extra = extra
	logger.WithField("func", "FromEvent").Infof("read batch %s from event %s of project %s", batch.ID, event.ID(), data.Project)
	return batch, nil
}
