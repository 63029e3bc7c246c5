// Package trace decodes the debug byte stream on the host side.
package trace

// The stream carries no framing: it is whatever the firmware Debugger
// transmitted, lines of text, dump listings and the fixed markers for
// overflow ("\x00~\n") and formatting failure ("!\n\x00"). Parser turns
// it back into Records one byte at a time, Monitor runs a Parser over a
// serial link in the background.
//
// Producer: L0 firmware
// Consumer: host tools (dbgmon, dbgsh)
