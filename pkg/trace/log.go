package trace

import (
	"context"

	"github.com/golang/glog"
)

// LogHandler logs records with glog. Dump entries are only logged at V(1).
type LogHandler struct{}

// HandleRecord implements RecordHandler.
func (LogHandler) HandleRecord(_ context.Context, rec *Record) {
	switch rec.Kind {
	case KindDumpEntry:
		glog.V(1).Info(rec.Summary())
	case KindOverflow, KindEncodingError:
		glog.Warning(rec.Summary())
	case KindHalt:
		glog.Error(rec.Summary())
	default:
		glog.Info(rec.Summary())
	}
}
