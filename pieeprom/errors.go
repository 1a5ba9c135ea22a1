package pieeprom

import "errors"

var (
	ErrorWrongSize      = errors.New("Image does not have the expected size")
	ErrorCorruptImage   = errors.New("Image section chain is corrupt")
	ErrorConfigNotFound = errors.New("Bootloader configuration not found in image")
	ErrorConfigTooLarge = errors.New("New configuration is too large")
	ErrorImageOverflow  = errors.New("Section data would run past the end of the image")
)
