package wire_test

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/padic/wire"
)

func TestEncoder(t *testing.T) {
	type TC struct {
		name      string
		valuation int16
		numerator *big.Int
		data      []byte
	}

	tcs := []TC{
		{
			name:      "zero",
			valuation: 0,
			numerator: new(big.Int),
			data: []byte{
				0x00, 0x00, // valuation
				0x01, 0x00, // length
				0x00, // numerator
			},
		},
		{
			name:      "13 at -1",
			valuation: -1,
			numerator: big.NewInt(13),
			data: []byte{
				0xFF, 0xFF,
				0x02, 0x00,
				0x01, 0x0D,
			},
		},
		{
			name:      "-300 at 2",
			valuation: 2,
			numerator: big.NewInt(-300),
			data: []byte{
				0x02, 0x00,
				0x03, 0x00,
				0x02, 0x2C, 0x01,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)

			err := wire.NewEncoder(buf).Encode(tc.valuation, tc.numerator)
			require.NoError(t, err)
			require.Equal(t, tc.data, buf.Bytes())
		})
	}
}

func TestEncoderNumeratorTooLong(t *testing.T) {
	// Sign byte plus a 32768 byte magnitude exceeds the 16 bit length.
	huge := new(big.Int).Lsh(big.NewInt(1), 8*32767)

	buf := bytes.NewBuffer(nil)

	err := wire.NewEncoder(buf).Encode(0, huge)
	require.Error(t, err)
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	enc := wire.NewEncoder(buf)

	numerator := big.NewInt(-524287)

	for n := 0; n < b.N; n++ {
		err := enc.Encode(-3, numerator)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
