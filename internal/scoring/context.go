package scoring

import (
	"github.com/at-ishikawa/gsmic/internal/dataset"
)

// HasIrrelevantContext reports whether any of the three labels deviates from its clean value.
func HasIrrelevantContext(labels dataset.Labels) bool {
	return labels.RoleLabel != dataset.LabelRelevant ||
		labels.NumberLabel != dataset.LabelInRange ||
		labels.SentenceLabel != dataset.LabelOnTopic
}
