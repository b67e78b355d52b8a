package inbound

import (
	"github.com/ohduang-droid/fc-morphix/domain"
)

// SegmentChainerPort derives the seed image for the next segment from the
// previous segment's result.
type SegmentChainerPort interface {
	Extend(previous *domain.SegmentResult) (*domain.ImageRef, error)
}
