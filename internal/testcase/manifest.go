package testcase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/testsel/testsel/internal/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Manifest is the discovery output listing the tests of one or more assemblies.
type Manifest struct {
	Assemblies []*AssemblyManifest `json:"assemblies" yaml:"assemblies"`
}

// AssemblyManifest lists the tests of a single assembly.
type AssemblyManifest struct {
	Name  string      `json:"name" yaml:"name"`
	Tests []*TestCase `json:"tests" yaml:"tests"`
}

// TestCases flattens the manifest, setting the assembly of each test case.
func (manifest *Manifest) TestCases() TestCases {
	var cases TestCases

	for _, asm := range manifest.Assemblies {
		if asm == nil {
			continue
		}

		for _, tc := range asm.Tests {
			if tc == nil {
				continue
			}

			tc.Assembly = asm.Name
			cases = append(cases, tc)
		}
	}

	return cases
}

// LoadManifest reads and decodes the manifest at path. The format is picked by file extension.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	manifest := new(Manifest)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()

		err = decoder.Decode(manifest)
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		err = decoder.Decode(manifest)
	default:
		return nil, errors.New(NewUnsupportedFormatError(path))
	}

	if err != nil {
		return nil, errors.New(NewDecodeError(path, err))
	}

	if err := manifest.validate(); err != nil {
		return nil, errors.New(NewDecodeError(path, err))
	}

	return manifest, nil
}

// validate rejects null entries, which decode without error in both formats.
func (manifest *Manifest) validate() error {
	for i, asm := range manifest.Assemblies {
		if asm == nil {
			return fmt.Errorf("assemblies[%d] is empty", i)
		}

		for j, tc := range asm.Tests {
			if tc == nil {
				return fmt.Errorf("assembly %q: tests[%d] is empty", asm.Name, j)
			}
		}
	}

	return nil
}

// LoadManifests loads the manifests concurrently and returns their test cases in the order of paths.
func LoadManifests(ctx context.Context, paths []string) (TestCases, error) {
	manifests := make([]*Manifest, len(paths))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			manifest, err := LoadManifest(path)
			if err != nil {
				return err
			}

			manifests[i] = manifest

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var cases TestCases

	for _, manifest := range manifests {
		cases = append(cases, manifest.TestCases()...)
	}

	return cases, nil
}
