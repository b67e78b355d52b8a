package services

import (
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type segmentChainer struct{}

func NewSegmentChainer() inbound.SegmentChainerPort {
	return &segmentChainer{}
}

// Extend extracts the continuation frame from a finished segment so the next
// segment picks up where it left off. Pure function of its input.
func (c *segmentChainer) Extend(previous *domain.SegmentResult) (*domain.ImageRef, error) {
	if previous == nil || previous.FinalFrame.IsEmpty() {
		return nil, domain.Errorf(domain.ErrNoContinuationFrame, "previous segment has no extractable continuation frame")
	}
	return previous.FinalFrame, nil
}
