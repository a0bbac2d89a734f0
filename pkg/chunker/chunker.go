package chunker

import (
	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/model"
)

// DefaultGroupSize is the number of targets rendered on one output line.
const DefaultGroupSize = 3

// Chunk partitions targets into ordered groups of at most size elements; only
// the last group may be shorter. The input is not modified.
func Chunk(targets model.TargetList, size int) []model.TargetGroup {
	if size <= 0 {
		size = DefaultGroupSize
	}
	items := targets.Items()
	splits := len(items) / size
	if len(items)%size > 0 {
		splits++
	}
	groups := make([]model.TargetGroup, 0, splits)
	for i := 0; i < splits; i++ {
		start := i * size
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		group := make(model.TargetGroup, end-start)
		copy(group, items[start:end])
		groups = append(groups, group)
	}
	logger.WithField("func", "Chunk").Debugf("split %d targets into %d groups of up to %d", len(items), len(groups), size)
	return groups
}
