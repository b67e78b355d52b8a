package outbound

import (
	"context"
	"github.com/ohduang-droid/fc-morphix/domain"
)

// RunRecorderPort persists pipeline run status transitions. Recording is
// best-effort from the pipeline's point of view: a failed write must not fail
// the run.
type RunRecorderPort interface {
	Record(ctx context.Context, record domain.RunRecord) error
}
