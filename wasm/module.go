package wasm

// Magic is the four-byte "\0asm" literal every module begins with.
var Magic = []byte{0x00, 0x61, 0x73, 0x6d}

// Version is the only module version this codec understands.
var Version = []byte{0x01, 0x00, 0x00, 0x00}

// Module is the root of the decoded representation: the ordered sequence
// of sections that followed the fixed magic+version header. The header
// itself is not a field here because it carries no information once
// decoded successfully — Magic and Version above are re-emitted verbatim
// by the encoder.
type Module struct {
	Sections []Section
}

// Find returns the first section of the given kind, or nil if none is
// present. Because CustomSection and UnknownSection may repeat, prefer
// FindAll for those.
func (m *Module) Find(kind SectionID) Section {
	for _, s := range m.Sections {
		if s.ID() == kind {
			return s
		}
	}
	return nil
}

// FindAll returns every section of the given kind, in module order.
func (m *Module) FindAll(kind SectionID) []Section {
	var out []Section
	for _, s := range m.Sections {
		if s.ID() == kind {
			out = append(out, s)
		}
	}
	return out
}

// FindCustom returns the first custom section with the given name, or nil
// if none is present. Custom section names are not required to be unique
// on the wire, per spec.md §1; this returns the first match.
func (m *Module) FindCustom(name string) *CustomSection {
	for _, s := range m.Sections {
		if cs, ok := s.(*CustomSection); ok && cs.Name == name {
			return cs
		}
	}
	return nil
}

// Start returns the module's start section, or nil if it has none.
func (m *Module) Start() *StartSection {
	if s, ok := m.Find(SectionIDStart).(*StartSection); ok {
		return s
	}
	return nil
}
