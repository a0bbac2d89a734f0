package model

import (
	"reflect"
	"testing"
)

func TestPromotionBatch_Bindings(t *testing.T) {
	batch := PromotionBatch{
		ID:            "1234",
		Instance:      "prod1",
		Source:        "dev",
		Destination:   "stage",
		PromotionType: "images",
		Targets:       ParseTargets("a:1"),
		Extra: map[string]string{
			"data.project": "myproject",
			"instance":     "ignored",
		},
	}
	want := map[string]string{
		"instance":       "prod1",
		"source":         "dev",
		"destination":    "stage",
		"promotion_type": "images",
		"batch_id":       "1234",
		"data.project":   "myproject",
	}
	if got := batch.Bindings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Bindings() = %v, want %v", got, want)
	}
}

func TestPromotionBatch_String(t *testing.T) {
	batch := NewPromotionBatch("prod1", "dev", "stage", "images", "a:1, b:2")
	want := "(Instance: prod1, Path: dev->stage, Promotion Type: images, a:1,b:2)"
	if got := batch.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
	if batch.ID == "" {
		t.Errorf("NewPromotionBatch() did not assign an ID")
	}
}
