package ustar

import (
	"bytes"
	"unicode/utf8"
)

// parseOctal decodes a fixed-width octal ASCII header field. Leading spaces
// are skipped and the value ends at the first NUL or space, or at the end of
// the field; a field with no digits decodes to zero. Bytes after the
// terminator are not inspected, so historical encoders that leave garbage in
// the tail of a field still decode.
func parseOctal(field []byte, max uint64) (uint64, error) {
	i := 0
	for i < len(field) && field[i] == ' ' {
		i++
	}
	var n uint64
	for ; i < len(field); i++ {
		c := field[i]
		if c == 0 || c == ' ' {
			break
		}
		if c < '0' || c > '7' {
			return 0, ErrNumberFormat
		}
		n = n<<3 | uint64(c-'0')
		if n > max {
			return 0, ErrNumberOverflow
		}
	}
	return n, nil
}

// trimField returns the field's value: everything up to the first NUL, or
// the whole field when the value exactly fills its width.
func trimField(field []byte) []byte {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return field[:i]
	}
	return field
}

// resolvePath joins the ustar prefix and name fields into one logical path.
// A non-empty prefix contributes `prefix + "/" + name`; otherwise the name
// stands alone.
func resolvePath(name, prefix []byte) (string, error) {
	n := trimField(name)
	p := trimField(prefix)
	var path string
	if len(p) > 0 {
		path = string(p) + "/" + string(n)
	} else {
		path = string(n)
	}
	if len(path) > maxPathLen {
		return "", ErrNameTooLong
	}
	if len(path) == 0 || !utf8.ValidString(path) {
		return "", ErrInvalidName
	}
	return path, nil
}
