package ustar

import (
	"bytes"
	"time"
)

// The checksum field's own position inside a header block. All other fields
// are consumed sequentially via slicer.
const (
	checksumOffset = 148
	checksumLen    = 8
)

var zeroBlock [BlockSize]byte

// verifyChecksum recomputes a header block's checksum and compares it with
// the stored octal value. The sum covers all 512 bytes with the checksum
// field itself counted as eight ASCII spaces. Bytes are summed unsigned; a
// signed (two's complement) sum is accepted as a fallback for historical
// encoders that computed it that way.
func verifyChecksum(block []byte) bool {
	stored, err := parseOctal(block[checksumOffset:checksumOffset+checksumLen], 1<<21-1)
	if err != nil {
		return false
	}
	var unsigned uint64
	var signed int64
	for i, c := range block {
		if i >= checksumOffset && i < checksumOffset+checksumLen {
			c = ' '
		}
		unsigned += uint64(c)
		signed += int64(int8(c))
	}
	return unsigned == stored || signed == int64(stored)
}

// decodeHeader interprets one 512-byte block as a header. An all-zero block
// returns errEndOfArchive; a block failing its checksum returns ErrChecksum.
// The block is not copied.
func decodeHeader(block []byte) (*Header, error) {
	if bytes.Equal(block, zeroBlock[:]) {
		return nil, errEndOfArchive
	}
	if !verifyChecksum(block) {
		return nil, ErrChecksum
	}

	s := slicer(block)
	name := s.next(100)
	mode := s.next(8)
	uid := s.next(8)
	gid := s.next(8)
	size := s.next(12)
	mtime := s.next(12)
	s.next(8) // checksum, verified above
	typeflag := s.next(1)[0]
	linkname := s.next(100)
	magic := s.next(6)
	s.next(2) // version
	uname := s.next(32)
	gname := s.next(32)
	devmajor := s.next(8)
	devminor := s.next(8)
	prefix := s.next(155)

	hdr := &Header{
		Typeflag: typeflag,
		Linkname: string(trimField(linkname)),
		Uname:    string(trimField(uname)),
		Gname:    string(trimField(gname)),
		Format:   FormatV7,
	}
	if string(magic) == magicUSTAR {
		hdr.Format = FormatUSTAR
	} else {
		// The prefix field only exists in the ustar layout; in older
		// archives those bytes are undefined.
		prefix = nil
	}

	var err error
	if hdr.Name, err = resolvePath(name, prefix); err != nil {
		return nil, &FieldError{Field: "name", Err: err}
	}
	fields := []struct {
		name string
		raw  []byte
		max  uint64
		dst  *int64
	}{
		{"mode", mode, 1<<21 - 1, &hdr.Mode},
		{"size", size, maxFileSize, &hdr.Size},
		{"devmajor", devmajor, 1<<21 - 1, &hdr.Devmajor},
		{"devminor", devminor, 1<<21 - 1, &hdr.Devminor},
	}
	for _, f := range fields {
		v, err := parseOctal(f.raw, f.max)
		if err != nil {
			return nil, &FieldError{Field: f.name, Err: err}
		}
		*f.dst = int64(v)
	}
	v, err := parseOctal(uid, 1<<21-1)
	if err != nil {
		return nil, &FieldError{Field: "uid", Err: err}
	}
	hdr.Uid = int(v)
	if v, err = parseOctal(gid, 1<<21-1); err != nil {
		return nil, &FieldError{Field: "gid", Err: err}
	}
	hdr.Gid = int(v)
	if v, err = parseOctal(mtime, 1<<33-1); err != nil {
		return nil, &FieldError{Field: "mtime", Err: err}
	}
	hdr.ModTime = time.Unix(int64(v), 0)

	return hdr, nil
}
