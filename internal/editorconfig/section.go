package editorconfig

// Properties is an ordered key/value mapping. Keys iterate in the order they
// were first set; setting an existing key replaces its value in place.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty Properties.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set assigns value to key.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it is present.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Section is one bracketed block of an .editorconfig file.
type Section struct {
	// Header is the literal header line, brackets included (e.g. "[*.ts]").
	Header     string
	Properties *Properties
}

// NewSection returns an empty section for header.
func NewSection(header string) *Section {
	return &Section{Header: header, Properties: NewProperties()}
}

// Find returns the section whose header equals header, or nil.
func Find(sections []*Section, header string) *Section {
	for _, s := range sections {
		if s.Header == header {
			return s
		}
	}
	return nil
}
