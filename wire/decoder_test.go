package wire_test

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/padic/wire"
)

func TestDecoder(t *testing.T) {
	type TC struct {
		name      string
		data      []byte
		valuation int16
		numerator *big.Int
	}

	tcs := []TC{
		{
			name: "zero",
			data: []byte{
				0x00, 0x00,
				0x01, 0x00,
				0x00,
			},
			valuation: 0,
			numerator: new(big.Int),
		},
		{
			name: "13 at -1",
			data: []byte{
				0xFF, 0xFF,
				0x02, 0x00,
				0x01, 0x0D,
			},
			valuation: -1,
			numerator: big.NewInt(13),
		},
		{
			name: "-300 at 2",
			data: []byte{
				0x02, 0x00,
				0x03, 0x00,
				0x02, 0x2C, 0x01,
			},
			valuation: 2,
			numerator: big.NewInt(-300),
		},
		{
			name: "zero with empty numerator",
			data: []byte{
				0x05, 0x00,
				0x00, 0x00,
			},
			valuation: 5,
			numerator: new(big.Int),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			valuation, numerator, err := wire.NewDecoder(bytes.NewReader(tc.data)).Decode()
			require.NoError(t, err)
			require.Equal(t, tc.valuation, valuation)
			require.Zero(t, tc.numerator.Cmp(numerator))
		})
	}
}

func TestDecoderEOF(t *testing.T) {
	// A stream ending on a record boundary is a clean EOF.
	data := []byte{
		0x00, 0x00,
		0x01, 0x00,
		0x04,
	}

	dec := wire.NewDecoder(bytes.NewReader(data))

	_, _, err := dec.Decode()
	require.NoError(t, err)

	_, _, err = dec.Decode()
	require.Equal(t, io.EOF, err)
}

func TestDecoderTruncated(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "inside valuation",
			data: []byte{0xFF},
		},
		{
			name: "before length",
			data: []byte{0xFF, 0xFF},
		},
		{
			name: "inside length",
			data: []byte{0xFF, 0xFF, 0x02},
		},
		{
			name: "before numerator",
			data: []byte{0xFF, 0xFF, 0x02, 0x00},
		},
		{
			name: "inside numerator",
			data: []byte{0xFF, 0xFF, 0x02, 0x00, 0x01},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, _, err := wire.NewDecoder(bytes.NewReader(tc.data)).Decode()
			require.Error(t, err)
			require.NotEqual(t, io.EOF, err)
		})
	}
}

func TestDecoderNegativeLength(t *testing.T) {
	data := []byte{
		0x00, 0x00,
		0xFF, 0xFF, // length -1
	}

	_, _, err := wire.NewDecoder(bytes.NewReader(data)).Decode()
	require.Error(t, err)
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{
		0xFD, 0xFF,
		0x04, 0x00,
		0x02, 0xFF, 0xFF, 0x07,
	}

	for n := 0; n < b.N; n++ {
		_, _, err := wire.NewDecoder(bytes.NewReader(data)).Decode()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
