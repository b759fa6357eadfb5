package style

import (
	_ "embed"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"mlc/geom"
)

//go:embed papers.yaml
var papersYAML []byte

// PaperClass groups paper presets by their sizing tradition. The class of a
// page is kept alongside its size so downstream defaults (e.g. class-based
// margins) can be derived later without re-matching dimensions.
type PaperClass uint8

const (
	// ClassCustom marks a page whose size was set explicitly.
	ClassCustom PaperClass = iota
	ClassISO
	ClassUS
	ClassBook
)

func (c PaperClass) String() string {
	switch c {
	case ClassISO:
		return "iso"
	case ClassUS:
		return "us"
	case ClassBook:
		return "book"
	default:
		return "custom"
	}
}

// Paper is a named page-size preset.
type Paper struct {
	Name  string
	Class PaperClass
	Size  geom.Size
}

// paperRecord is the on-disk shape of one preset entry. Sizes are dimension
// literals ("210mm", "8.5in") parsed with geom.ParseLength.
type paperRecord struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

var papers map[string]Paper

func init() {
	var table struct {
		Papers []paperRecord `yaml:"papers"`
	}
	if err := yaml.Unmarshal(papersYAML, &table); err != nil {
		panic(fmt.Sprintf("style: bad embedded paper table: %v", err))
	}

	papers = make(map[string]Paper, len(table.Papers))
	for _, rec := range table.Papers {
		var class PaperClass
		switch rec.Class {
		case "iso":
			class = ClassISO
		case "us":
			class = ClassUS
		case "book":
			class = ClassBook
		default:
			panic(fmt.Sprintf("style: unknown paper class %q for %q", rec.Class, rec.Name))
		}
		w, err := geom.ParseLength(rec.Width)
		if err != nil {
			panic(fmt.Sprintf("style: bad width for paper %q: %v", rec.Name, err))
		}
		h, err := geom.ParseLength(rec.Height)
		if err != nil {
			panic(fmt.Sprintf("style: bad height for paper %q: %v", rec.Name, err))
		}
		papers[rec.Name] = Paper{
			Name:  rec.Name,
			Class: class,
			Size:  geom.Size{W: w, H: h},
		}
	}
}

// PaperByName looks up a paper preset. Names are case-insensitive.
func PaperByName(name string) (Paper, bool) {
	p, ok := papers[strings.ToLower(name)]
	return p, ok
}
