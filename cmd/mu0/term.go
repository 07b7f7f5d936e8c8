package main

import (
	"os"

	"golang.org/x/sys/unix"
)

var termRestore unix.Termios

// enterRawTerm puts stdin into raw mode so a single keypress advances the
// stepper without waiting for a newline.
func enterRawTerm() (err error) {
	termios, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), unix.TCGETS)
	if err != nil {
		return
	}

	termRestore = *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	err = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, &termstate)

	return
}

func exitRawTerm() {
	_ = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, &termRestore)
}

func waitKey() {
	var one [1]byte
	_, _ = os.Stdin.Read(one[:])
}
