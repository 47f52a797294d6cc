// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is an encoded QR code.
type Code struct {
	Grid
	Version Version
	Level   Level
	Mask    Mask
}

// Encode encodes seg into a QR code with the given version, level
// and mask.  If mask is AutoMask, the mask with the lowest penalty
// is chosen.
func Encode(v Version, l Level, mask Mask, seg Segment) (*Code, error) {
	switch {
	case !v.Valid():
		return nil, ErrVersion
	case !l.Valid():
		return nil, ErrLevel
	case mask != AutoMask && !mask.Valid():
		return nil, ErrMask
	}
	if err := seg.check(); err != nil {
		return nil, err
	}
	class := v.SizeClass()
	if n := seg.EncodedLength(class); n > v.DataBits(l) || !seg.Fits(class) {
		return nil, &CapacityError{Mode: seg.Mode, Level: l, Version: v, Bits: n}
	}
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}

	b := NewBits(v)
	if err := seg.Encode(b, class); err != nil {
		return nil, err
	}
	b.Pad(v, l)
	g, maskable := p.Place(Interleave(Blocks(b.Bytes(), v, l)))

	// Apply the mask, then the format and version information,
	// which is not masked.
	if mask == AutoMask {
		mask, g = SelectMask(g, maskable)
	} else {
		ApplyMask(g, maskable, mask)
	}
	WriteFormat(g, l, mask)
	WriteVersion(g, v)
	return &Code{Grid: g, Version: v, Level: l, Mask: mask}, nil
}
