package configure

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
	"github.com/AndreyAkinshin/cgoconf/internal/optset"
)

// Result is a resolved cgo configuration. Option lists are free of
// duplicates and keep the order in which each option first appeared.
type Result struct {
	Toolchain string
	LinkMode  model.LinkMode

	CppOpts    *optset.OptionSet
	COpts      *optset.OptionSet
	CxxOpts    *optset.OptionSet
	ObjcOpts   *optset.OptionSet
	ObjcxxOpts *optset.OptionSet
	LinkOpts   *optset.OptionSet

	// Inputs are the files the build must stage: dependency headers and
	// every selected library file.
	Inputs []string
	// Deps are the shared libraries the linked artifact depends on.
	Deps []string
	// Runfiles are the data files of all dependencies, merged in order.
	Runfiles []string
}

// Configuration is the flattened, serializable form of a Result.
type Configuration struct {
	Toolchain  string   `json:"toolchain" yaml:"toolchain"`
	LinkMode   string   `json:"link_mode" yaml:"link_mode"`
	CppOpts    []string `json:"cppopts" yaml:"cppopts"`
	COpts      []string `json:"copts" yaml:"copts"`
	CxxOpts    []string `json:"cxxopts" yaml:"cxxopts"`
	ObjcOpts   []string `json:"objcopts" yaml:"objcopts"`
	ObjcxxOpts []string `json:"objcxxopts" yaml:"objcxxopts"`
	LinkOpts   []string `json:"clinkopts" yaml:"clinkopts"`
	Inputs     []string `json:"inputs" yaml:"inputs"`
	Deps       []string `json:"deps" yaml:"deps"`
	Runfiles   []string `json:"runfiles" yaml:"runfiles"`
}

// Configuration flattens the result into argument lists.
func (r *Result) Configuration() Configuration {
	return Configuration{
		Toolchain:  r.Toolchain,
		LinkMode:   string(r.LinkMode),
		CppOpts:    r.CppOpts.Args(),
		COpts:      r.COpts.Args(),
		CxxOpts:    r.CxxOpts.Args(),
		ObjcOpts:   r.ObjcOpts.Args(),
		ObjcxxOpts: r.ObjcxxOpts.Args(),
		LinkOpts:   r.LinkOpts.Args(),
		Inputs:     nonNil(r.Inputs),
		Deps:       nonNil(r.Deps),
		Runfiles:   nonNil(r.Runfiles),
	}
}

// MarshalJSON encodes the flattened configuration.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Configuration())
}

// Fingerprint is a hex SHA-256 of the JSON encoding. Equal inputs give
// equal fingerprints.
func (r *Result) Fingerprint() string {
	data, err := json.Marshal(r.Configuration())
	if err != nil {
		// Configuration holds only strings.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
