package model

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	BindingInstance      = "instance"
	BindingSource        = "source"
	BindingDestination   = "destination"
	BindingPromotionType = "promotion_type"
	BindingTargets       = "targets"
	BindingBatchID       = "batch_id"
)

// PromotionBatch is a single promotion request.
type PromotionBatch struct {
	ID            string
	Instance      string
	Source        string
	Destination   string
	PromotionType string
	Targets       TargetList
	// Extra holds additional bindings, e.g. the flattened fields of an input event.
	Extra map[string]string
}

// NewPromotionBatch returns a batch with a fresh ID and targets parsed from raw.
func NewPromotionBatch(instance, source, destination, promotionType, targets string) PromotionBatch {
	return PromotionBatch{
		ID:            uuid.New().String(),
		Instance:      instance,
		Source:        source,
		Destination:   destination,
		PromotionType: promotionType,
		Targets:       ParseTargets(targets),
	}
}

// Bindings returns the placeholder values shared by every line of the batch.
// Batch fields win over extra bindings with the same name.
func (b PromotionBatch) Bindings() map[string]string {
	m := make(map[string]string, len(b.Extra)+5)
	for k, v := range b.Extra {
		m[k] = v
	}
	m[BindingInstance] = b.Instance
	m[BindingSource] = b.Source
	m[BindingDestination] = b.Destination
	m[BindingPromotionType] = b.PromotionType
	m[BindingBatchID] = b.ID
	return m
}

func (b PromotionBatch) String() string {
	return fmt.Sprintf("(Instance: %s, Path: %s->%s, Promotion Type: %s, %s)", b.Instance, b.Source, b.Destination, b.PromotionType, b.Targets)
}
