package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog format. JSON files parse as well, being a
// subset of YAML.
//
//	items:
//	  - name: Boho Dress
//	    description: Flowy, earthy tones for festival vibes
//	    tags: [boho, cozy]
type File struct {
	Items []Item `yaml:"items"`
}

// Load reads a catalog file from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return New()
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(f.Items...)
}

// Encode writes the catalog in the File format. Embeddings are not written.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Items: c.Items()}); err != nil {
		return err
	}
	return enc.Close()
}
