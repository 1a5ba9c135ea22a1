package main

import (
	"fmt"

	"github.com/XECDesign/rpi-eeprom/pieeprom"
	"github.com/sigurn/crc16"
)

type SectionsCmd struct {
	Image string `arg name:"image" help:"EEPROM image to list."`
}

func (l *SectionsCmd) Run(c *Context) error {
	im, err := loadImage(c, l.Image)
	if err != nil {
		return err
	}

	crcTab := crc16.MakeTable(crc16.CRC16_XMODEM)
	raw := im.Bytes()

	fmt.Printf("Offset   | Magic    |  Length | CRC16 | Name\n")

	sc := im.Sections()
	for sc.Next() {
		s := sc.Section()

		start := s.Offset + 8
		end := start + s.Length
		if end > pieeprom.ImageSize {
			end = pieeprom.ImageSize
		}
		if end < start {
			end = start
		}
		crc := crc16.Update(0, raw[start:end], crcTab)

		fmt.Printf("%08x | %08x | %7d |  %04x | %s\n", s.Offset, s.Magic, s.Length, crc, s.Name)
	}

	return sc.Err()
}
