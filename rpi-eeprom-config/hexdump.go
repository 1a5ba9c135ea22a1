package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

func hexdump(offset int, data []byte, mark []bool) string {
	var out strings.Builder
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > 32 {
			l = 32
		}
		work := data[:l]
		data = data[l:]

		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var hexCol, asciiCol string
		for i := 0; i < 32; i++ {
			if i >= len(work) {
				hexCol += "   "
				asciiCol += " "
			} else {
				m := work[i]
				a := m
				if a < 32 || a > 126 {
					a = '.'
				}

				if workMark != nil && workMark[i] {
					hexCol += red.Sprintf("%02x ", m)
					asciiCol += red.Sprintf("%c", a)
				} else {
					hexCol += fmt.Sprintf("%02x ", m)
					asciiCol += fmt.Sprintf("%c", a)
				}
			}
			if i%8 == 7 {
				hexCol += " "
			}
		}

		fmt.Fprintf(&out, "%08x  %s|%s|\n", offset, hexCol, asciiCol)
		offset += l
	}

	return out.String()
}
