package input

import (
	"fmt"

	"keptn/promotion-formatter/pkg/model"
)

// BatchArgs names the positional arguments in the order they are expected.
var BatchArgs = []string{"instance", "source", "destination", "promotion_type", "targets"}

// FromArgs builds a batch from instance, source, destination, promotion type and
// the comma separated targets.
func FromArgs(args []string) (model.PromotionBatch, error) {
	if len(args) != len(BatchArgs) {
		return model.PromotionBatch{}, fmt.Errorf("expected %d arguments %v, got %d", len(BatchArgs), BatchArgs, len(args))
	}
	return model.NewPromotionBatch(args[0], args[1], args[2], args[3], args[4]), nil
}
