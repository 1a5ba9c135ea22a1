package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/XECDesign/rpi-eeprom/pieeprom"
	"github.com/inancgumus/screen"
)

type DumpCmd struct {
	Loop     int    `optional help:"0=Dump once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
	Filename string `optional help:"File to write dump to."`

	Image  string `arg name:"image" help:"EEPROM image to read."`
	Addr   int    `arg name:"addr" help:"Offset to start at." type:"int"`
	Amount int    `arg name:"amount" help:"Number of bytes to dump, omit for the rest of the image." optional default:"0"`
}

func (l *DumpCmd) Run(c *Context) error {
	if l.Loop < 0 || l.Loop > 2 {
		return errors.New("Loop flag out of range")
	}
	if l.Addr < 0 || l.Addr >= pieeprom.ImageSize {
		return errors.New("Address out of range")
	}

	amount := l.Amount
	if amount <= 0 || l.Addr+amount > pieeprom.ImageSize {
		amount = pieeprom.ImageSize - l.Addr
	}

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()
		if l.Loop == 2 || mark == nil {
			mark = make([]bool, amount)
		}

		/* The image is reread every iteration so changes made by another
		 * process show up */
		im, err := loadImage(c, l.Image)
		if err != nil {
			return err
		}
		buf := im.Bytes()[l.Addr : l.Addr+amount]

		if l.Filename != "" {
			return ioutil.WriteFile(l.Filename, buf, 0644)
		}

		if l.Loop != 0 {
			screen.Clear()
			screen.MoveTopLeft()
			if oldBuf != nil {
				for i, m := range oldBuf {
					if m != buf[i] {
						mark[i] = true
					}
				}
			}
		}
		fmt.Println(hexdump(l.Addr, buf, mark))

		oldBuf = buf

		if l.Loop == 0 {
			break
		}
		d := time.Now().Sub(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}
