package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/hupe1980/exkmeans/model"
)

const (
	// HeaderSize is the size of the dimension and count fields.
	HeaderSize = 12
	// CoordinateSize is the encoded size of one coordinate.
	CoordinateSize = 8
)

// FormatError indicates a buffer that does not follow the dataset layout.
type FormatError struct {
	// Need is the number of bytes the header requires (0 if unknown).
	Need uint64
	// Have is the number of bytes available.
	Have int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Need > 0 {
		return fmt.Sprintf("malformed input: %s (need %d bytes, have %d)", e.Msg, e.Need, e.Have)
	}
	return fmt.Sprintf("malformed input: %s (have %d bytes)", e.Msg, e.Have)
}

// RequiredSize returns 12 + count*dimension*8 and false if that overflows.
func RequiredSize(dimension uint32, count uint64) (uint64, bool) {
	hi, coords := bits.Mul64(count, uint64(dimension))
	if hi != 0 {
		return 0, false
	}
	hi, payload := bits.Mul64(coords, CoordinateSize)
	if hi != 0 {
		return 0, false
	}
	total, carry := bits.Add64(payload, HeaderSize, 0)
	if carry != 0 {
		return 0, false
	}
	return total, true
}

// Decode parses a dataset from data. Bytes beyond the declared payload are ignored.
func Decode(data []byte) (*model.Dataset, error) {
	if len(data) < 4 {
		return nil, &FormatError{Have: len(data), Msg: "cannot read dimension"}
	}
	if len(data) < HeaderSize {
		return nil, &FormatError{Have: len(data), Msg: "cannot read vector count"}
	}

	dim := binary.BigEndian.Uint32(data[0:4])
	count := binary.BigEndian.Uint64(data[4:12])

	if dim == 0 && count > 0 {
		return nil, &FormatError{Have: len(data), Msg: fmt.Sprintf("%d vectors of dimension 0", count)}
	}

	need, ok := RequiredSize(dim, count)
	if !ok || need > math.MaxInt {
		return nil, &FormatError{Have: len(data), Msg: fmt.Sprintf("declared size overflows (dimension=%d, count=%d)", dim, count)}
	}
	if uint64(len(data)) < need {
		return nil, &FormatError{Need: need, Have: len(data), Msg: fmt.Sprintf("truncated payload (dimension=%d, count=%d)", dim, count)}
	}

	d := int(dim)
	n := int(count)

	// One backing array for all coordinates.
	coords := make([]int64, n*d)
	off := HeaderSize
	for i := range coords {
		coords[i] = int64(binary.BigEndian.Uint64(data[off : off+CoordinateSize]))
		off += CoordinateSize
	}

	vectors := make([]model.Vector, n)
	for i := range vectors {
		vectors[i] = model.Vector(coords[i*d : (i+1)*d : (i+1)*d])
	}

	return &model.Dataset{Dimension: d, Vectors: vectors}, nil
}

// Encode returns the binary representation of ds.
func Encode(ds *model.Dataset) ([]byte, error) {
	if err := validate(ds); err != nil {
		return nil, err
	}
	buf := make([]byte, HeaderSize+len(ds.Vectors)*ds.Dimension*CoordinateSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(ds.Dimension))
	binary.BigEndian.PutUint64(buf[4:12], uint64(len(ds.Vectors)))

	off := HeaderSize
	for _, v := range ds.Vectors {
		for _, c := range v {
			binary.BigEndian.PutUint64(buf[off:], uint64(c))
			off += CoordinateSize
		}
	}
	return buf, nil
}

// Write streams the binary representation of ds to w.
func Write(w io.Writer, ds *model.Dataset) error {
	if err := validate(ds); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	var hdr [HeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(ds.Dimension))
	binary.BigEndian.PutUint64(hdr[4:12], uint64(len(ds.Vectors)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	var scratch [CoordinateSize]byte
	for _, v := range ds.Vectors {
		for _, c := range v {
			binary.BigEndian.PutUint64(scratch[:], uint64(c))
			if _, err := bw.Write(scratch[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func validate(ds *model.Dataset) error {
	if ds == nil {
		return fmt.Errorf("codec: nil dataset")
	}
	if ds.Dimension < 0 || uint64(ds.Dimension) > math.MaxUint32 {
		return fmt.Errorf("codec: dimension %d out of range", ds.Dimension)
	}
	return ds.Check()
}
