package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"keptn/promotion-formatter/pkg/model"
	"keptn/promotion-formatter/pkg/replacer"
)

func testTemplates() model.LineTemplates {
	return model.LineTemplates{
		Instance:          stradr("# {instance}"),
		Path:              stradr("{source}->{destination}"),
		PromoteImages:     stradr("- {targets}"),
		PromoteConfigMaps: stradr("- config maps: {targets}"),
		PromoteSecrets:    stradr("- secrets ({promotion_type}): {targets}"),
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		batch model.PromotionBatch
		want  []string
	}{
		{
			name:  "images in two groups",
			batch: model.NewPromotionBatch("prod1", "dev", "stage", "images", "a:1,b:2,c:3,d:4"),
			want: []string{
				"# prod1",
				"dev->stage",
				"- a:1,b:2,c:3",
				"- d:4",
			},
		},
		{
			name:  "alias and case insensitive type",
			batch: model.NewPromotionBatch("prod1", "dev", "stage", "Config_Map", "cm1, cm2"),
			want: []string{
				"# prod1",
				"dev->stage",
				"- config maps: cm1,cm2",
			},
		},
		{
			name:  "raw promotion type is bound",
			batch: model.NewPromotionBatch("prod1", "stage", "prod", "Secret", "s1,s2,s3"),
			want: []string{
				"# prod1",
				"stage->prod",
				"- secrets (Secret): s1,s2,s3",
			},
		},
		{
			name:  "no targets",
			batch: model.NewPromotionBatch("prod1", "dev", "stage", "images", ""),
			want: []string{
				"# prod1",
				"dev->stage",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFormatter(testTemplates(), 3).Format(tt.batch)
			if err != nil {
				t.Fatalf("Format() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatEventBindings(t *testing.T) {
	templates := testTemplates()
	templates.Instance = stradr("# {instance} ({data.labels.version})")
	batch := model.NewPromotionBatch("prod1", "dev", "stage", "images", "a:1")
	batch.Extra = map[string]string{"data.labels.version": "1.2.3"}

	got, err := NewFormatter(templates, 3).Format(batch)
	if err != nil {
		t.Fatalf("Format() unexpected error = %v", err)
	}
	if got[0] != "# prod1 (1.2.3)" {
		t.Errorf("Format() instance line = %v", got[0])
	}
}

func TestFormatErrors(t *testing.T) {
	batch := model.NewPromotionBatch("prod1", "dev", "stage", "images", "a:1")

	unknown := batch
	unknown.PromotionType = "volumes"
	var typeErr *model.UnrecognizedPromotionTypeError
	if _, err := NewFormatter(testTemplates(), 3).Format(unknown); !errors.As(err, &typeErr) {
		t.Errorf("Format() error = %v, want UnrecognizedPromotionTypeError", err)
	}

	templates := testTemplates()
	templates.Instance = stradr("# {instance} {targets}")
	var missing *replacer.MissingBindingError
	if _, err := NewFormatter(templates, 3).Format(batch); !errors.As(err, &missing) || missing.Name != "targets" {
		t.Errorf("Format() error = %v, want MissingBindingError for targets", err)
	}

	templates = testTemplates()
	templates.PromoteImages = stradr("- {targets")
	var malformed *replacer.MalformedTemplateError
	if _, err := NewFormatter(templates, 3).Format(batch); !errors.As(err, &malformed) {
		t.Errorf("Format() error = %v, want MalformedTemplateError", err)
	}

	templated := batch
	templated.PromotionType = "templates"
	if _, err := NewFormatter(testTemplates(), 3).Format(templated); err == nil || !strings.Contains(err.Error(), "templates") {
		t.Errorf("Format() error = %v, want missing template error", err)
	}
}

func stradr(str string) *string {
	return &str
}
