// Package usart provides Transmitters for the debug channel: plain
// writers, serial devices and websocket serial bridges.
package usart
