//go:build !linux
// +build !linux

package usart

import (
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/dbgout/pkg/debug"
)

const openFlags = os.O_RDWR

func configure(f *os.File, conf *debug.Config) error {
	if conf != nil && conf.Baudrate != 0 {
		glog.Warningf("%s: baud rate setup not supported on this platform", f.Name())
	}
	return nil
}
