package pieeprom

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func putSection(buf []byte, off int, magic uint32, length int) int {
	binary.BigEndian.PutUint32(buf[off:], magic)
	binary.BigEndian.PutUint32(buf[off+4:], uint32(length))
	off += 8 + length
	off += 8 - off%8
	return off
}

func putFile(buf []byte, off int, name string, payload []byte, length int) int {
	binary.BigEndian.PutUint32(buf[off:], FileMagic)
	binary.BigEndian.PutUint32(buf[off+4:], uint32(length))
	copy(buf[off+8:off+8+FilenameLen], name)
	copy(buf[off+FileHdrLen:], payload)
	off += 8 + length
	off += 8 - off%8
	return off
}

/* Writes a section sized so that the cursor leaves the image right after it */
func putFiller(buf []byte, off int) {
	putSection(buf, off, MagicMask, ImageSize-off-8)
}

func newTestImage(t *testing.T, buf []byte) *Image {
	t.Helper()

	im, err := New(buf, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return im
}

func TestNewWrongSize(t *testing.T) {
	for _, n := range []int{0, ImageSize - 1, ImageSize + 1} {
		if _, err := New(make([]byte, n), Config{}); !errors.Is(err, ErrorWrongSize) {
			t.Errorf("New with %d bytes: err = %v, want ErrorWrongSize", n, err)
		}
	}

	if _, err := New(make([]byte, ImageSize), Config{}); err != nil {
		t.Errorf("New with %d bytes: %v", ImageSize, err)
	}
}

func TestScanOffsets(t *testing.T) {
	buf := make([]byte, ImageSize)
	off := putSection(buf, 0, MagicMask, 3)
	off = putSection(buf, off, MagicMask, 16)
	off = putFile(buf, off, BootconfTxt, []byte("A"), 17)
	putFiller(buf, off)

	im := newTestImage(t, buf)

	var got []Section
	sc := im.Sections()
	for sc.Next() {
		got = append(got, sc.Section())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	/* A section with length 3 pads to the next boundary, one with length 16
	 * ends aligned and still skips a full pad word */
	wantOffsets := []int{0, 16, 48, 80}
	if len(got) != len(wantOffsets) {
		t.Fatalf("scanned %d sections, want %d", len(got), len(wantOffsets))
	}
	for i, want := range wantOffsets {
		if got[i].Offset != want {
			t.Errorf("section %d at offset %d, want %d", i, got[i].Offset, want)
		}
	}

	if got[2].Magic != FileMagic || got[2].Name != BootconfTxt {
		t.Errorf("section 2 = %+v, want %s file section", got[2], BootconfTxt)
	}
	if got[0].Name != "" || got[1].Name != "" || got[3].Name != "" {
		t.Errorf("non-file sections carry names: %+v", got)
	}
}

func TestScanCorrupt(t *testing.T) {
	buf := make([]byte, ImageSize)
	off := putFile(buf, 0, "pubkey.bin", []byte("key"), 19)
	binary.BigEndian.PutUint32(buf[off:], 0xdeadbeef)

	im := newTestImage(t, buf)

	_, err := im.FindFile(BootconfTxt)
	if !errors.Is(err, ErrorCorruptImage) {
		t.Fatalf("FindFile: err = %v, want ErrorCorruptImage", err)
	}
	if !strings.Contains(err.Error(), "000020") {
		t.Errorf("error does not name the failing offset: %v", err)
	}
}

func TestScanZeroImage(t *testing.T) {
	im := newTestImage(t, make([]byte, ImageSize))

	sc := im.Sections()
	if sc.Next() {
		t.Fatal("Next returned a section in an all zero image")
	}
	if !errors.Is(sc.Err(), ErrorCorruptImage) {
		t.Errorf("Err = %v, want ErrorCorruptImage", sc.Err())
	}
}

func TestScanNameAtImageEnd(t *testing.T) {
	buf := make([]byte, ImageSize)
	off := putSection(buf, 0, MagicMask, ImageSize-24)
	if off != ImageSize-8 {
		t.Fatalf("filler ends at %d, want %d", off, ImageSize-8)
	}

	/* Header fits, the name field would not */
	binary.BigEndian.PutUint32(buf[off:], FileMagic)
	binary.BigEndian.PutUint32(buf[off+4:], 16)

	im := newTestImage(t, buf)

	var last Section
	sc := im.Sections()
	for sc.Next() {
		last = sc.Section()
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if last.Offset != ImageSize-8 || last.Name != "" {
		t.Errorf("last section = %+v, want empty name at offset %d", last, ImageSize-8)
	}

	if _, err := im.FindFile(BootconfTxt); !errors.Is(err, ErrorConfigNotFound) {
		t.Errorf("FindFile: err = %v, want ErrorConfigNotFound", err)
	}
}
