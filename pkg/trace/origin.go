package trace

import (
	"os"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Origin identifies where records come from.
type Origin struct {
	// Source identifies the device emitting the stream.
	Source string
	// Session identifies one monitor run.
	Session string
}

// NewOrigin creates an Origin with a fresh session. An empty source
// defaults to the machine ID.
func NewOrigin(source string) Origin {
	if source == "" {
		source = MachineID()
	}
	return Origin{Source: source, Session: uuid.New().String()}
}

// Stamp fills the origin fields of rec.
func (o Origin) Stamp(rec *Record, at time.Time) {
	rec.Source, rec.Session, rec.Timestamp = o.Source, o.Session, at.UnixNano()
}

// MachineID retrieves the unique ID identifying the machine, falling
// back to the host name.
func MachineID() string {
	id, err := machineid.ID()
	if err == nil && id != "" {
		return id
	}
	glog.Warningf("machine id unavailable: %v", err)
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "unknown"
}
