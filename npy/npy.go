// Package npy reads and writes NumPy .npy files (format version 1.0) holding
// C-ordered float64 arrays.
//
// The codec covers exactly what the dataset export needs: little-endian
// float64 payloads ("<f8") of arbitrary rank with an explicit shape, written
// losslessly so the files round-trip bit for bit.
package npy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Errors returned by the codec.
var (
	ErrBadMagic     = errors.New("npy: bad magic number")
	ErrVersion      = errors.New("npy: unsupported format version")
	ErrHeader       = errors.New("npy: malformed header")
	ErrDescr        = errors.New("npy: unsupported dtype descriptor")
	ErrFortranOrder = errors.New("npy: fortran-ordered arrays are not supported")
	ErrShape        = errors.New("npy: shape does not match data length")
)

var magic = [6]byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

// headerAlign pads the full preamble to a multiple of this size, per the
// format specification.
const headerAlign = 64

// Write encodes data with the given shape as a version 1.0 .npy stream.
// The product of the shape dimensions must equal len(data).
func Write(w io.Writer, shape []int, data []float64) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: empty shape", ErrShape)
	}

	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return fmt.Errorf("%w: negative dimension %d", ErrShape, dim)
		}
		n *= dim
	}

	if n != len(data) {
		return fmt.Errorf("%w: shape %v holds %d elements, data has %d", ErrShape, shape, n, len(data))
	}

	header := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': %s, }", shapeLiteral(shape))

	// Pad with spaces so the 10-byte preamble plus header is 64-aligned,
	// keeping one byte for the terminating newline.
	total := len(magic) + 2 + 2 + len(header) + 1
	if rem := total % headerAlign; rem != 0 {
		header += strings.Repeat(" ", headerAlign-rem)
	}
	header += "\n"

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{1, 0}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	_, err := w.Write(buf)

	return err
}

// WriteFile writes the array to path, creating or truncating the file.
func WriteFile(path string, shape []int, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, shape, data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

var (
	descrRe   = regexp.MustCompile(`'descr':\s*'([^']+)'`)
	fortranRe = regexp.MustCompile(`'fortran_order':\s*(True|False)`)
	shapeRe   = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
)

// Read decodes a version 1.x .npy stream of little-endian float64 data.
func Read(r io.Reader) (shape []int, data []float64, err error) {
	var preamble [10]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, nil, err
	}

	if [6]byte(preamble[:6]) != magic {
		return nil, nil, ErrBadMagic
	}

	if preamble[6] != 1 {
		return nil, nil, fmt.Errorf("%w: %d.%d", ErrVersion, preamble[6], preamble[7])
	}

	headerLen := binary.LittleEndian.Uint16(preamble[8:10])
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, nil, err
	}

	shape, err = parseHeader(string(header))
	if err != nil {
		return nil, nil, err
	}

	// Guard the element count so a malformed shape cannot overflow the
	// payload allocation below.
	const maxElems = math.MaxInt / 8

	n := 1
	for _, dim := range shape {
		if dim > 0 && n > maxElems/dim {
			return nil, nil, fmt.Errorf("%w: shape %v too large", ErrHeader, shape)
		}
		n *= dim
	}

	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, err
	}

	data = make([]float64, n)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return shape, data, nil
}

// ReadFile reads a .npy file from path.
func ReadFile(path string) ([]int, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return Read(f)
}

func parseHeader(header string) ([]int, error) {
	m := descrRe.FindStringSubmatch(header)
	if m == nil {
		return nil, fmt.Errorf("%w: missing descr", ErrHeader)
	}
	if m[1] != "<f8" {
		return nil, fmt.Errorf("%w: %q", ErrDescr, m[1])
	}

	m = fortranRe.FindStringSubmatch(header)
	if m == nil {
		return nil, fmt.Errorf("%w: missing fortran_order", ErrHeader)
	}
	if m[1] == "True" {
		return nil, ErrFortranOrder
	}

	m = shapeRe.FindStringSubmatch(header)
	if m == nil {
		return nil, fmt.Errorf("%w: missing shape", ErrHeader)
	}

	var shape []int
	for _, field := range strings.Split(m[1], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		dim, err := strconv.Atoi(field)
		if err != nil || dim < 0 {
			return nil, fmt.Errorf("%w: shape dimension %q", ErrHeader, field)
		}
		shape = append(shape, dim)
	}

	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrHeader)
	}

	return shape, nil
}

// shapeLiteral renders a shape the way NumPy prints tuples: "(5,)" for rank
// one, "(2, 3)" otherwise.
func shapeLiteral(shape []int) string {
	if len(shape) == 1 {
		return fmt.Sprintf("(%d,)", shape[0])
	}

	parts := make([]string, len(shape))
	for i, dim := range shape {
		parts[i] = strconv.Itoa(dim)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
