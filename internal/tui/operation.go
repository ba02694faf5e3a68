package tui

import (
	"context"

	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/utils"
)

var traceIDs = utils.NewUUIDGenerator()

// operationContext stamps a fresh trace id on ctx. The catalog request sends
// it as X-Trace-ID and the logger attached to ctx writes it on every line.
func operationContext(ctx context.Context) context.Context {
	traceID := traceIDs.Generate()
	opLog := logger.FromContext(ctx).WithTraceID(traceID)
	return opLog.WithContext(utils.WithTraceID(ctx, traceID))
}
