package format_test

import (
	"trygap/internal/doc"
	"trygap/internal/trygap"
)

func hasGap(d doc.Doc) bool {
	return doc.HasLabel(d, trygap.GapLabel)
}
