package main

import (
	"bytes"
	"errors"
	"io/ioutil"
)

type EditCmd struct {
	Image string `arg name:"image" help:"EEPROM image to read or update."`

	Config string `optional help:"File holding the new configuration. Omit to print the current one."`
	Out    string `optional help:"Output file, stdout if not given."`
	Verify bool   `optional help:"Read back and verify the updated configuration."`
}

func (e *EditCmd) Run(c *Context) error {
	im, err := loadImage(c, e.Image)
	if err != nil {
		return err
	}

	if e.Config == "" {
		payload, err := im.ReadConfig()
		if err != nil {
			return err
		}

		return writeOutput(e.Out, payload)
	}

	payload, err := ioutil.ReadFile(e.Config)
	if err != nil {
		return err
	}

	if err := im.WriteConfig(payload); err != nil {
		return err
	}

	if e.Verify {
		readback, err := im.ReadConfig()
		if err != nil {
			return err
		}
		if !bytes.Equal(readback, payload) {
			return errors.New("Failed to verify write")
		}
		c.log.Info().Msg("Verification OK")
	}

	if err := writeOutput(e.Out, im.Bytes()); err != nil {
		return err
	}

	c.log.Info().Str("image", e.Image).Int("bytes", len(payload)).Msg("Configuration replaced")
	return nil
}
