package pieeprom

import "fmt"

const (
	ImageSize = 512 * 1024

	MagicMask = 0x55aaf00f
	FileMagic = 0x55aaf11f

	FileHdrLen  = 20
	FilenameLen = 12

	BootconfTxt = "bootconf.txt"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	LogFunc LogFunc
}

type Image struct {
	buf    []byte
	config Config
}

func New(buf []byte, config Config) (*Image, error) {
	if len(buf) != ImageSize {
		return nil, fmt.Errorf("%w: %d bytes, expected %d", ErrorWrongSize, len(buf), ImageSize)
	}

	return &Image{
		buf:    buf,
		config: config,
	}, nil
}

func (im *Image) Bytes() []byte {
	return im.buf
}

func (im *Image) log(level int, format string, param ...interface{}) {
	if im.config.LogFunc != nil {
		im.config.LogFunc(level, format, param...)
	}
}
