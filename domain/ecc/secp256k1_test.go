package ecc

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in test source: " + err.Error())
	}
	return b
}

func scalarBytes(k *big.Int) []byte {
	return k.FillBytes(make([]byte, ScalarSize))
}

var multiplesOfG = []struct {
	k            int64
	compressed   string
	uncompressed string
}{
	{
		k:            1,
		compressed:   "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		uncompressed: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	},
	{
		k:            2,
		compressed:   "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		uncompressed: "04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee51ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a",
	},
	{
		k:            3,
		compressed:   "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
		uncompressed: "04f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672",
	},
	{
		k:            7,
		compressed:   "025cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc",
		uncompressed: "045cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc6aebca40ba255960a3178d6d861a54dba813d0b813fde7b5a5082628087264da",
	},
	{
		k:            255,
		compressed:   "031b38903a43f7f114ed4500b4eac7083fdefece1cf29c63528d563446f972c180",
		uncompressed: "041b38903a43f7f114ed4500b4eac7083fdefece1cf29c63528d563446f972c1804036edc931a60ae889353f77fd53de4a2708b26b6f5da72ad3394119daf408f9",
	},
}

func TestScalarBaseMult(t *testing.T) {
	curve := S256()
	for i, test := range multiplesOfG {
		point, err := curve.ScalarBaseMult(scalarBytes(big.NewInt(test.k)))
		if err != nil {
			t.Fatalf("Test #%d: ScalarBaseMult: %+v", i, err)
		}

		compressed := point.SerializeCompressed()
		if !bytes.Equal(compressed, hexToBytes(test.compressed)) {
			t.Fatalf("Test #%d: unexpected compressed point -- got: %x, want: %s",
				i, compressed, test.compressed)
		}
		uncompressed := point.SerializeUncompressed()
		if !bytes.Equal(uncompressed, hexToBytes(test.uncompressed)) {
			t.Fatalf("Test #%d: unexpected uncompressed point -- got: %x, want: %s",
				i, uncompressed, test.uncompressed)
		}
	}
}

// TestCompressionRoundTrip checks that decompressing a compressed point and
// parsing its uncompressed form both give back the same point.
func TestCompressionRoundTrip(t *testing.T) {
	curve := S256()
	for k := int64(1); k <= 64; k++ {
		point, err := curve.ScalarBaseMult(scalarBytes(big.NewInt(k)))
		if err != nil {
			t.Fatalf("ScalarBaseMult(%d): %+v", k, err)
		}

		fromCompressed, err := curve.ParsePublicKey(point.SerializeCompressed())
		if err != nil {
			t.Fatalf("ParsePublicKey(compressed %d): %+v", k, err)
		}
		if !fromCompressed.IsEqual(point) {
			t.Fatalf("decompress(compress(%dG)) changed the point:\n%s", k,
				spew.Sdump(point, fromCompressed))
		}

		fromUncompressed, err := curve.ParsePublicKey(point.SerializeUncompressed())
		if err != nil {
			t.Fatalf("ParsePublicKey(uncompressed %d): %+v", k, err)
		}
		if !fromUncompressed.IsEqual(point) {
			t.Fatalf("parse(uncompressed(%dG)) changed the point:\n%s", k,
				spew.Sdump(point, fromUncompressed))
		}
	}
}

func TestParsePublicKeyErrors(t *testing.T) {
	gUncompressed := hexToBytes(multiplesOfG[0].uncompressed)
	offCurveUncompressed := append([]byte(nil), gUncompressed...)
	offCurveUncompressed[len(offCurveUncompressed)-1] ^= 0x01

	fieldPrime := hexToBytes("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// x = 5 gives x^3 + 7 = 132, which is not a square modulo p.
	x5 := make([]byte, PubKeyBytesLenCompressed)
	x5[0] = pubKeyFormatCompressedEven
	x5[len(x5)-1] = 5

	tests := []struct {
		name string
		key  []byte
	}{
		{name: "empty", key: nil},
		{name: "32 bytes", key: hexToBytes(multiplesOfG[0].compressed)[1:]},
		{name: "34 bytes", key: append(hexToBytes(multiplesOfG[0].compressed), 0x00)},
		{name: "64 bytes", key: gUncompressed[1:]},
		{name: "compressed with 0x04 prefix", key: append([]byte{0x04}, hexToBytes(multiplesOfG[0].compressed)[1:]...)},
		{name: "compressed with 0x00 prefix", key: append([]byte{0x00}, hexToBytes(multiplesOfG[0].compressed)[1:]...)},
		{name: "uncompressed with 0x02 prefix", key: append([]byte{0x02}, gUncompressed[1:]...)},
		{name: "hybrid 0x06 prefix", key: append([]byte{0x06}, gUncompressed[1:]...)},
		{name: "uncompressed not on curve", key: offCurveUncompressed},
		{name: "compressed x not on curve", key: x5},
		{name: "compressed x equals field prime", key: append([]byte{0x02}, fieldPrime...)},
		{name: "uncompressed x equals field prime", key: append(append([]byte{0x04}, fieldPrime...), gUncompressed[33:]...)},
	}

	curve := S256()
	for _, test := range tests {
		_, err := curve.ParsePublicKey(test.key)
		if !errors.Is(err, ErrInvalidPublicKey) {
			t.Fatalf("%s: expected ErrInvalidPublicKey but got %v", test.name, err)
		}
	}
}

func TestAddPoints(t *testing.T) {
	curve := S256()
	points := make(map[int64]*PublicKey)
	for _, k := range []int64{5, 11, 16} {
		point, err := curve.ScalarBaseMult(scalarBytes(big.NewInt(k)))
		if err != nil {
			t.Fatalf("ScalarBaseMult(%d): %+v", k, err)
		}
		points[k] = point
	}

	sum, err := curve.AddPoints(points[5], points[11])
	if err != nil {
		t.Fatalf("AddPoints: %+v", err)
	}
	if !sum.IsEqual(points[16]) {
		t.Fatalf("5G + 11G != 16G: got %x", sum.SerializeCompressed())
	}

	g, err := curve.ParsePublicKey(hexToBytes(multiplesOfG[0].compressed))
	if err != nil {
		t.Fatalf("ParsePublicKey: %+v", err)
	}
	doubled, err := curve.AddPoints(g, g)
	if err != nil {
		t.Fatalf("AddPoints(G, G): %+v", err)
	}
	if !bytes.Equal(doubled.SerializeCompressed(), hexToBytes(multiplesOfG[1].compressed)) {
		t.Fatalf("G + G != 2G: got %x", doubled.SerializeCompressed())
	}

	negG, err := curve.ParsePublicKey(hexToBytes("0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"))
	if err != nil {
		t.Fatalf("ParsePublicKey(-G): %+v", err)
	}
	_, err = curve.AddPoints(g, negG)
	if !errors.Is(err, ErrPointAtInfinity) {
		t.Fatalf("G + (-G): expected ErrPointAtInfinity but got %v", err)
	}
}

func TestScalarArithmetic(t *testing.T) {
	curve := S256()
	nMinusOne := hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	one := scalarBytes(big.NewInt(1))
	two := scalarBytes(big.NewInt(2))

	sum, err := curve.AddScalars(nMinusOne, one)
	if err != nil {
		t.Fatalf("AddScalars: %+v", err)
	}
	if !bytes.Equal(sum, make([]byte, ScalarSize)) {
		t.Fatalf("(n-1) + 1 should wrap to zero but got %x", sum)
	}

	sum, err = curve.AddScalars(nMinusOne, two)
	if err != nil {
		t.Fatalf("AddScalars: %+v", err)
	}
	if !bytes.Equal(sum, one) {
		t.Fatalf("(n-1) + 2 should wrap to one but got %x", sum)
	}

	order := new(big.Int).Add(new(big.Int).SetBytes(nMinusOne), big.NewInt(1))
	_, err = curve.AddScalars(scalarBytes(order), one)
	if !errors.Is(err, ErrInvalidScalar) {
		t.Fatalf("AddScalars(n, 1): expected ErrInvalidScalar but got %v", err)
	}
	_, err = curve.AddScalars(one[1:], one)
	if !errors.Is(err, ErrInvalidScalar) {
		t.Fatalf("AddScalars(short, 1): expected ErrInvalidScalar but got %v", err)
	}

	if curve.CompareToOrder(nMinusOne) != -1 {
		t.Fatalf("n-1 should compare below the order")
	}
	if curve.CompareToOrder(scalarBytes(order)) != 0 {
		t.Fatalf("n should compare equal to the order")
	}
	if curve.CompareToOrder(bytes.Repeat([]byte{0xff}, ScalarSize)) != 1 {
		t.Fatalf("2^256-1 should compare above the order")
	}

	_, err = curve.ScalarBaseMult(make([]byte, ScalarSize))
	if !errors.Is(err, ErrPointAtInfinity) {
		t.Fatalf("ScalarBaseMult(0): expected ErrPointAtInfinity but got %v", err)
	}
	_, err = curve.ScalarBaseMult(scalarBytes(order))
	if !errors.Is(err, ErrInvalidScalar) {
		t.Fatalf("ScalarBaseMult(n): expected ErrInvalidScalar but got %v", err)
	}

	validity := []struct {
		k    []byte
		want bool
	}{
		{k: one, want: true},
		{k: nMinusOne, want: true},
		{k: make([]byte, ScalarSize), want: false},
		{k: scalarBytes(order), want: false},
		{k: one[1:], want: false},
	}
	for i, test := range validity {
		if got := IsValidScalar(curve, test.k); got != test.want {
			t.Fatalf("Test #%d: IsValidScalar(%x) = %t, want %t", i, test.k, got, test.want)
		}
	}
}
