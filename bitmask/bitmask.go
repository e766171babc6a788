// SPDX-License-Identifier: MIT

package bitmask

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest code a uint32 mask can address.
const MaxWidth = 32

// ErrInvalidWidth indicates a code width outside [0, MaxWidth].
var ErrInvalidWidth = errors.New("bitmask: invalid code width")

// Table is an immutable, ordered list of XOR masks.
type Table struct {
	masks []uint32
}

// OneBit returns the width masks with exactly one bit set, ascending by position.
func OneBit(width int) (Table, error) {
	if err := checkWidth(width); err != nil {
		return Table{}, err
	}
	masks := make([]uint32, 0, width)
	for pos := 0; pos < width; pos++ {
		masks = append(masks, uint32(1)<<pos)
	}

	return Table{masks: masks}, nil
}

// TwoBit returns the C(width,2) masks with exactly two bits set. The lower bit
// position is the primary key and the higher one the secondary key.
func TwoBit(width int) (Table, error) {
	if err := checkWidth(width); err != nil {
		return Table{}, err
	}
	masks := make([]uint32, 0, width*(width-1)/2)
	for lo := 0; lo < width; lo++ {
		for hi := lo + 1; hi < width; hi++ {
			masks = append(masks, uint32(1)<<lo|uint32(1)<<hi)
		}
	}

	return Table{masks: masks}, nil
}

// Neighbors returns the one-bit masks followed by the two-bit masks.
func Neighbors(width int) (Table, error) {
	one, err := OneBit(width)
	if err != nil {
		return Table{}, err
	}
	two, _ := TwoBit(width)
	masks := make([]uint32, 0, one.Len()+two.Len())
	masks = append(masks, one.masks...)
	masks = append(masks, two.masks...)

	return Table{masks: masks}, nil
}

// Get returns the mask at index i, or 0 when i is out of range.
func (t Table) Get(i int) uint32 {
	if i < 0 || i >= len(t.masks) {
		return 0
	}

	return t.masks[i]
}

// Len returns the number of valid entries.
func (t Table) Len() int { return len(t.masks) }

// Masks returns a copy of the table.
func (t Table) Masks() []uint32 {
	out := make([]uint32, len(t.masks))
	copy(out, t.masks)

	return out
}

func checkWidth(width int) error {
	if width < 0 || width > MaxWidth {
		return fmt.Errorf("width %d: %w", width, ErrInvalidWidth)
	}

	return nil
}
