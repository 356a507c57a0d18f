/*
Copyright (c) 2013 Blake Smith <blakesmith0@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package ustar

import (
	"errors"
	"io"
	"unicode/utf8"
)

// Archive provides read access to a tar archive held in a byte buffer.
// Call Entries to iterate over its files.
//
// Example:
//
//	archive, err := ustar.New(buf)
//	if err != nil {
//	    return err
//	}
//	entries := archive.Entries()
//	for {
//	    entry, err := entries.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    use(entry.Name, entry.Data())
//	}
type Archive struct {
	// data is the full archive image. Nothing in the package ever writes to
	// it, so any number of Readers and Entries may share it.
	data []byte
}

// New interprets data as a tar archive without copying it. The returned
// Archive, and every Reader and Entry derived from it, aliases data; the
// caller must not modify the buffer while any of them is in use. It returns
// ErrInvalidSize if the buffer is not block-aligned or is too small to hold
// an archive.
func New(data []byte) (*Archive, error) {
	if len(data) < minArchiveSize || len(data)%BlockSize != 0 {
		return nil, ErrInvalidSize
	}
	return &Archive{data: data}, nil
}

// NewOwned is like New but stores a private copy of data, so the caller may
// reuse or free the source buffer as soon as NewOwned returns. Entries then
// borrow from the copy and stay valid for the Archive's lifetime.
func NewOwned(data []byte) (*Archive, error) {
	a, err := New(data)
	if err != nil {
		return nil, err
	}
	a.data = append([]byte(nil), data...)
	return a, nil
}

// Entries returns a new Reader positioned at the archive's first entry.
// Each call returns an independent Reader; iterating one does not affect
// another.
func (a *Archive) Entries() *Reader {
	return &Reader{data: a.data}
}

// Reader iterates over the regular files in an Archive.
type Reader struct {
	data []byte

	// offset is the position of the next header block. It is always a
	// multiple of BlockSize.
	offset int64

	// err is the terminal result, io.EOF included. Once set, Next returns
	// it forever.
	err error
}

// Next returns the next regular file in the archive. Directory entries and
// unsupported entry kinds (links, devices, FIFOs) are consumed but not
// returned. io.EOF signals the end of the archive: either a zero terminator
// block or the buffer simply running out at a block boundary, so archives
// trimmed right after their last data block still iterate to completion.
//
// Any other error is terminal. Data extents are computed from header fields,
// so once a header fails to decode, every later offset is untrusted and
// iteration stops rather than resynchronizing.
func (r *Reader) Next() (*Entry, error) {
	for r.err == nil {
		if r.offset+BlockSize > int64(len(r.data)) {
			r.err = io.EOF
			break
		}
		hdr, err := decodeHeader(r.data[r.offset : r.offset+BlockSize])
		if errors.Is(err, errEndOfArchive) {
			r.err = io.EOF
			break
		}
		if err != nil {
			r.err = &HeaderError{Offset: r.offset, Err: err}
			break
		}
		padded := roundBlock(hdr.Size)
		if r.offset+BlockSize+padded > int64(len(r.data)) {
			r.err = &HeaderError{Offset: r.offset, Err: ErrTruncated}
			break
		}
		start := r.offset + BlockSize
		r.offset = start + padded
		if hdr.IsRegular() {
			return &Entry{Header: *hdr, data: r.data[start : start+hdr.Size]}, nil
		}
	}
	return nil, r.err
}

// Entry is one regular file in the archive: its decoded header plus a view
// of its content. Entries are immutable snapshots and remain valid after
// the Reader that produced them advances.
type Entry struct {
	Header

	data []byte
}

// Data returns the entry's content. The slice references the archive's
// buffer directly and must not be modified; its length always equals the
// entry's Size.
func (e *Entry) Data() []byte {
	return e.data
}

// Text returns the entry's content as a string, or ErrInvalidText if the
// bytes are not valid UTF-8. For binary content use Data.
func (e *Entry) Text() (string, error) {
	if !utf8.Valid(e.data) {
		return "", ErrInvalidText
	}
	return string(e.data), nil
}
