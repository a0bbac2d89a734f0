package handler

import (
	"io"

	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/config"
	"keptn/promotion-formatter/pkg/formatter"
	"keptn/promotion-formatter/pkg/model"
	"keptn/promotion-formatter/pkg/output"
)

type PromotionBatchHandler struct {
	formatter  formatter.Formatter
	stdout     io.Writer
	outputPath string
	strict     bool
}

// NewPromotionBatchHandler returns a handler writing to outputPath, or to stdout
// when outputPath is empty. In strict mode target validation mismatches abort.
func NewPromotionBatchHandler(f formatter.Formatter, stdout io.Writer, outputPath string, strict bool) *PromotionBatchHandler {
	return &PromotionBatchHandler{formatter: f, stdout: stdout, outputPath: outputPath, strict: strict}
}

// Handle validates, formats and writes one batch. Set confirmed when the user
// already accepted targets that fail validation.
func (h *PromotionBatchHandler) Handle(batch model.PromotionBatch, confirmed bool) error {
	log := logger.WithField("func", "Handle").WithField("batch", batch.ID)
	log.Debugf("handling batch %s", batch)
	promotionType, err := model.ParsePromotionType(batch.PromotionType)
	if err != nil {
		log.WithError(err).Error("unrecognized promotion type")
		return err
	}
	if mismatch := config.CheckTargets(promotionType, batch.Targets); mismatch != nil {
		if h.strict && !confirmed {
			log.WithError(mismatch).Error("target validation failed")
			return mismatch
		}
		log.Warnf("continuing with invalid targets: %s", mismatch)
	}
	lines, err := h.formatter.Format(batch)
	if err != nil {
		log.WithError(err).Error("formatting batch failed")
		return err
	}
	return output.Write(h.outputPath, h.stdout, lines)
}
