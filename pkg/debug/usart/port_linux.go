package usart

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/robotalks/dbgout/pkg/debug"
)

const openFlags = os.O_RDWR | unix.O_NOCTTY

var baudRates = map[uint32]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
	460800: unix.B460800,
	921600: unix.B921600,
}

func configure(f *os.File, conf *debug.Config) error {
	fd := int(f.Fd())
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	if conf != nil && conf.Baudrate != 0 {
		speed, ok := baudRates[conf.Baudrate]
		if !ok {
			return fmt.Errorf("unsupported baud rate %d", conf.Baudrate)
		}
		t.Cflag &^= unix.CBAUD
		t.Cflag |= speed
		t.Ispeed, t.Ospeed = speed, speed
	}
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}
