// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Mapping is a view of length bytes at offset inside a mapped region. The
// region is kept whole so that it is always unmapped with its original
// extent.
type Mapping struct {
	region []byte
	offset int
	length int
}

// NewMapping describes the view [offset, offset+length) of region.
func NewMapping(region []byte, offset, length int) (*Mapping, error) {
	if offset < 0 || length < 0 || offset+length > len(region) {
		return nil, fmt.Errorf("%w: view [%d, %d) of %d byte region",
			ErrInvalidMapping, offset, offset+length, len(region))
	}

	return &Mapping{
		region: region,
		offset: offset,
		length: length,
	}, nil
}

// Bytes is the view. Its capacity ends with the view so appends cannot spill
// into the rest of the region.
func (m *Mapping) Bytes() []byte {
	if m.region == nil {
		return nil
	}
	end := m.offset + m.length
	return m.region[m.offset:end:end]
}

func (m *Mapping) Offset() int     { return m.offset }
func (m *Mapping) Len() int        { return m.length }
func (m *Mapping) RegionSize() int { return len(m.region) }

func (m *Mapping) unmap() error {
	if m.region == nil {
		return nil
	}

	region := m.region
	m.region = nil

	return munmap(region)
}
