package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusError
	statusInfo
)

var statusStyles = map[statusKind]struct {
	tag   string
	color string
}{
	statusOK:    {"OK", "\x1b[32m"},
	statusWarn:  {"WARN", "\x1b[33m"},
	statusError: {"ERROR", "\x1b[31m"},
	statusInfo:  {"INFO", "\x1b[34m"},
}

const ansiReset = "\x1b[0m"

// statusPrinter writes "Label:      [TAG] message" lines, colored only when
// the destination is a terminal.
type statusPrinter struct {
	out   io.Writer
	color bool
	width int
}

func newStatusPrinter(out io.Writer) statusPrinter {
	return statusPrinter{out: out, color: isTerminal(out), width: 12}
}

func (p statusPrinter) line(label string, kind statusKind, message string) {
	style := statusStyles[kind]
	text := fmt.Sprintf("%-*s [%s]", p.width, label+":", style.tag)
	if message != "" {
		text += " " + message
	}
	if p.color && style.color != "" {
		text = style.color + text + ansiReset
	}
	fmt.Fprintln(p.out, text)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
