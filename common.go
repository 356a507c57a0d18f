// Package ustar reads POSIX/ustar tar archives held entirely in memory.
// Entries are zero-copy views into the caller's buffer, which makes the
// package suitable for constrained environments that receive an archive
// image as a plain byte slice (e.g. a boot-loader-supplied initial ramdisk)
// and cannot afford per-entry allocation or an io.Reader pipeline.
package ustar

import (
	"time"
)

const (
	// BlockSize is the fixed unit of a tar stream. Every header occupies
	// exactly one block and file data is padded with zero bytes up to the
	// next block boundary.
	BlockSize = 512

	// minArchiveSize leaves room for one header block plus the minimal
	// end-of-archive terminator.
	minArchiveSize = 2 * BlockSize

	// maxFileSize is the largest value the 12-byte octal size field can
	// carry: 8 GiB - 1.
	maxFileSize = 1<<33 - 1

	// maxPathLen is the longest path expressible through the ustar
	// name + '/' + prefix scheme.
	maxPathLen = 256
)

// magicUSTAR is the value of the magic field in POSIX ustar headers.
// Pre-POSIX (V7) archives leave the field blank.
const magicUSTAR = "ustar\x00"

// Typeflag values. Anything other than a regular file or a directory is
// decoded but never yielded as an entry.
const (
	TypeReg  byte = '0' // regular file
	TypeRegA byte = 0   // regular file, pre-POSIX encoding

	TypeLink    byte = '1' // hard link
	TypeSymlink byte = '2'
	TypeChar    byte = '3' // character device node
	TypeBlock   byte = '4' // block device node
	TypeDir     byte = '5'
	TypeFifo    byte = '6'
	TypeCont    byte = '7' // contiguous file, historical

	TypeXHeader       byte = 'x' // PAX extended header, unsupported
	TypeXGlobalHeader byte = 'g' // PAX global header, unsupported
)

// Format identifies the header variant an archive was written in.
type Format int

const (
	// FormatV7 is the original Unix V7 layout: blank magic, no prefix field.
	FormatV7 Format = iota

	// FormatUSTAR is the POSIX.1-1988 layout, which adds the magic marker
	// and the prefix field for paths longer than 100 bytes.
	FormatUSTAR
)

// Header is the decoded form of one 512-byte header block.
type Header struct {
	// Name is the full entry path, with the ustar prefix field already
	// joined in front of the name field.
	Name string

	Mode     int64
	Uid      int
	Gid      int
	Size     int64
	ModTime  time.Time
	Typeflag byte
	Linkname string
	Uname    string
	Gname    string
	Devmajor int64
	Devminor int64
	Format   Format
}

// IsRegular reports whether the header describes a regular file. The
// pre-POSIX encoding marks directories with a trailing slash on the name
// rather than a distinct typeflag.
func (h *Header) IsRegular() bool {
	if h.Typeflag == TypeRegA {
		return !endsWithSlash(h.Name)
	}
	return h.Typeflag == TypeReg
}

// IsDir reports whether the header describes a directory.
func (h *Header) IsDir() bool {
	return h.Typeflag == TypeDir || (h.Typeflag == TypeRegA && endsWithSlash(h.Name))
}

func endsWithSlash(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '/'
}

type slicer []byte

func (sp *slicer) next(n int) (b []byte) {
	s := *sp
	b, *sp = s[0:n], s[n:]
	return
}

// roundBlock rounds n up to the next multiple of BlockSize.
func roundBlock(n int64) int64 {
	return (n + BlockSize - 1) &^ (BlockSize - 1)
}
