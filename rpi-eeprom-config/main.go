package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/XECDesign/rpi-eeprom/pieeprom"
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

type Context struct {
	log zerolog.Logger
}

var CLI struct {
	LogLevel int `optional help:"Higher values give more output."`

	Edit     EditCmd     `cmd default:"withargs" help:"Read or replace the bootloader configuration in an image."`
	Sections SectionsCmd `cmd help:"List the sections of an image."`
	Dump     DumpCmd     `cmd help:"Read and dump part of an image."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("int", intMapper{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	level := zerolog.InfoLevel
	if CLI.LogLevel > 0 {
		level = zerolog.DebugLevel
	}

	c := &Context{
		log: zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger(),
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}

func loadImage(c *Context, path string) (*pieeprom.Image, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return pieeprom.New(buf, pieeprom.Config{
		LogFunc: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			c.log.Debug().Msgf(format, param...)
		},
	})
}

/* Stdout is reserved for payload and image bytes, all logging goes to
 * stderr. When writing to a file the data is synced to disk before the
 * command reports success. */
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := fdatasync(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
