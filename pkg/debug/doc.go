// Package debug provides the firmware debug channel.
package debug

// A Debugger renders a message or a memory dump into a small fixed
// Buffer and sends the bytes one by one through a Transmitter (usually
// the UART). Output never grows beyond Capacity: text that does not fit
// is truncated and tagged with the overflow marker "~\n", and a template
// the renderer rejects is replaced by the encoding-error marker "!\n".
//
// Nothing is reported back to the caller. The only terminal condition is
// Halt, which emits a diagnostic line and parks forever.
//
// Producer: L0 firmware
// Consumer: serial console, see package trace for the host side decoder
