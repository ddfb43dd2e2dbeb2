// SPDX-License-Identifier: EPL-2.0

package audio

// Mapped maps the file read-only and exposes the samples without copying.
// Shared selects a shared mapping instead of a private one.
type Mapped struct {
	Shared bool
}

func (m Mapped) Load(req Request) (*Buffer, error) {
	mapping, err := MapFile(req.Path, req.Header.DataOffset, req.Header.BufferLen(), m.Shared)
	if err != nil {
		return nil, err
	}

	return AdoptMapping(mapping, m.Shared), nil
}
