package pieeprom

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

/* Every section starts with two big endian 32-bit words and is padded so
 * that the next header begins on an 8 byte boundary:
 *
 *   0x00  4   magic, valid when magic & MagicMask == MagicMask
 *   0x04  4   length of the data after the length field
 *   0x08  12  filename, NUL padded (FileMagic sections only)
 *   0x14  ..  file payload
 */
type Section struct {
	Offset int
	Magic  uint32
	Length int
	Name   string
}

type SectionScanner struct {
	img     *Image
	offset  int64
	section Section
	err     error
}

func (im *Image) Sections() *SectionScanner {
	return &SectionScanner{img: im}
}

func (sc *SectionScanner) Next() bool {
	if sc.err != nil || sc.offset >= ImageSize {
		return false
	}

	/* Offsets stay 8 byte aligned, so a header never straddles the end of the image */
	off := int(sc.offset)
	magic := binary.BigEndian.Uint32(sc.img.buf[off:])
	length := binary.BigEndian.Uint32(sc.img.buf[off+4:])

	if magic&MagicMask != MagicMask {
		sc.err = fmt.Errorf("%w: bad magic %08x at offset 0x%06x", ErrorCorruptImage, magic, off)
		return false
	}

	sc.section = Section{
		Offset: off,
		Magic:  magic,
		Length: int(length),
	}

	if magic == FileMagic {
		end := off + 8 + FilenameLen
		if end > ImageSize {
			end = ImageSize
		}
		sc.section.Name = string(bytes.TrimRight(sc.img.buf[off+8:end], "\x00"))
	}

	sc.img.log(2, "Section %08x at offset 0x%06x, length %d", magic, off, length)

	/* A section ending exactly on an 8 byte boundary still skips a full pad word */
	sc.offset += 8 + int64(length)
	sc.offset += 8 - sc.offset%8

	return true
}

func (sc *SectionScanner) Section() Section {
	return sc.section
}

func (sc *SectionScanner) Err() error {
	return sc.err
}
