package postgres

import (
	"database/sql/driver"
	"math/big"
	"reflect"
	"strings"

	"github.com/Station-Manager/errors"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{
		Name:    "varbit",
		SQLType: "varbit",
		GoType:  reflect.TypeOf(BitSet{}),
	})
}

// Bits is a fixed-width bit string. Bit 0 is the leftmost bit of the column
// value, matching how the server prints varbit literals.
type Bits struct {
	length int
	words  *big.Int
}

// NewBits returns an all-zero bit string of the given width.
func NewBits(length int) Bits {
	return Bits{length: length, words: new(big.Int)}
}

// ParseBits builds a bit string from a literal of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	const op errors.Op = "columns.postgres.ParseBits"
	if s == "" {
		return NewBits(0), nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return Bits{}, errors.New(op).Msg(columns.ErrMsgBadBitString)
		}
	}
	words, _ := new(big.Int).SetString(s, 2)
	return Bits{length: len(s), words: words}, nil
}

// Len returns the width of the bit string.
func (b Bits) Len() int { return b.length }

// Test reports whether bit i is set. Out-of-range bits read as zero.
func (b Bits) Test(i int) bool {
	if i < 0 || i >= b.length || b.words == nil {
		return false
	}
	return b.words.Bit(b.length-1-i) == 1
}

// Set writes bit i. Setting a bit at or past Len grows the string, padding
// with zeros.
func (b *Bits) Set(i int, v bool) {
	if i < 0 {
		return
	}
	if b.words == nil {
		b.words = new(big.Int)
	}
	if i >= b.length {
		// Shift existing bits left to keep them at the same visual position.
		b.words.Lsh(b.words, uint(i+1-b.length))
		b.length = i + 1
	}
	bit := uint(0)
	if v {
		bit = 1
	}
	b.words.SetBit(b.words, b.length-1-i, bit)
}

// String renders the bit string as a '0'/'1' literal of exactly Len
// characters.
func (b Bits) String() string {
	if b.length == 0 {
		return ""
	}
	if b.words == nil {
		return strings.Repeat("0", b.length)
	}
	text := b.words.Text(2)
	if pad := b.length - len(text); pad > 0 {
		return strings.Repeat("0", pad) + text
	}
	return text
}

// Clone returns a detached copy.
func (b Bits) Clone() Bits {
	out := Bits{length: b.length, words: new(big.Int)}
	if b.words != nil {
		out.words.Set(b.words)
	}
	return out
}

// Equal reports whether two bit strings have the same width and bits.
func (b Bits) Equal(other Bits) bool {
	if b.length != other.length {
		return false
	}
	bw, ow := b.words, other.words
	if bw == nil {
		bw = new(big.Int)
	}
	if ow == nil {
		ow = new(big.Int)
	}
	return bw.Cmp(ow) == 0
}

type bitsCodec struct{}

func (bitsCodec) DecodeColumn(src any) (Bits, error) {
	const op errors.Op = "columns.postgres.bitsCodec.DecodeColumn"
	s, err := columns.AsString(src)
	if err != nil {
		return Bits{}, errors.New(op).Err(err)
	}
	b, err := ParseBits(strings.TrimSpace(s))
	if err != nil {
		return Bits{}, errors.New(op).Err(err)
	}
	return b, nil
}

func (bitsCodec) EncodeColumn(v Bits) (driver.Value, error) {
	return v.String(), nil
}

func (bitsCodec) EqualColumn(a, b Bits) bool { return a.Equal(b) }

func (bitsCodec) CloneColumn(v Bits) Bits { return v.Clone() }

// BitSet stores a variable-width bit string in a varbit column.
type BitSet struct {
	sqltypes.Mutable[Bits, bitsCodec]
}

// BitSetFrom returns a valid BitSet column holding b.
func BitSetFrom(b Bits) BitSet {
	return BitSet{sqltypes.NewMutable[Bits, bitsCodec](b)}
}

// ParseBitSet returns a BitSet column for a '0'/'1' literal.
func ParseBitSet(s string) (BitSet, error) {
	b, err := ParseBits(s)
	if err != nil {
		return BitSet{}, err
	}
	return BitSetFrom(b), nil
}
