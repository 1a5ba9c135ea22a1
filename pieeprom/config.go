package pieeprom

import (
	"encoding/binary"
	"fmt"
)

func (im *Image) FindFile(name string) (Section, error) {
	sc := im.Sections()
	for sc.Next() {
		s := sc.Section()
		if s.Magic == FileMagic && s.Name == name {
			im.log(1, "Found %s at offset 0x%06x, length %d", name, s.Offset, s.Length)
			return s, nil
		}
	}
	if err := sc.Err(); err != nil {
		return Section{}, err
	}

	return Section{}, fmt.Errorf("%w: %s", ErrorConfigNotFound, name)
}

func (im *Image) ReadFile(s Section) []byte {
	/* The length field governs the read extent, clamped to the image */
	start := s.Offset + FileHdrLen
	end := start + s.Length - FilenameLen - 4

	if start > ImageSize {
		start = ImageSize
	}
	if end > ImageSize {
		end = ImageSize
	}
	if end < start {
		end = start
	}

	return append([]byte(nil), im.buf[start:end]...)
}

func (im *Image) WriteFile(s Section, payload []byte) error {
	newLen := len(payload) + FilenameLen + 4

	/* A payload that outgrows the original section is still accepted while
	 * its encoded length stays within 1024 bytes */
	if newLen > s.Length && newLen > 1024 {
		return fmt.Errorf("%w: %d bytes encode to %d, section holds %d",
			ErrorConfigTooLarge, len(payload), newLen, s.Length)
	}
	if s.Offset+FileHdrLen+len(payload) > ImageSize {
		return fmt.Errorf("%w: %d byte payload at offset 0x%06x",
			ErrorImageOverflow, len(payload), s.Offset)
	}

	/* Only the length field and payload change. Old data past the new
	 * payload is left in place, the updated length hides it. */
	binary.BigEndian.PutUint32(im.buf[s.Offset+4:], uint32(newLen))
	copy(im.buf[s.Offset+FileHdrLen:], payload)

	im.log(1, "Replaced %s: length %d -> %d", s.Name, s.Length, newLen)
	return nil
}

func (im *Image) ReadConfig() ([]byte, error) {
	s, err := im.FindFile(BootconfTxt)
	if err != nil {
		return nil, err
	}
	return im.ReadFile(s), nil
}

func (im *Image) WriteConfig(payload []byte) error {
	s, err := im.FindFile(BootconfTxt)
	if err != nil {
		return err
	}
	return im.WriteFile(s, payload)
}
