package spec

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type Chain struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

type Spec struct {
	Name   string  `json:"name"`
	Chains []Chain `json:"chains"`
}

func Read(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrapf(err, "file: %s", filename)
	}

	if err := spec.validate(); err != nil {
		return nil, errors.Wrapf(err, "file: %s", filename)
	}

	return &spec, nil
}

func (s *Spec) validate() error {
	names := make(map[string]struct{}, len(s.Chains))
	for i, c := range s.Chains {
		if c.Name == "" {
			return errors.Errorf("chains[%d]: missing name", i)
		}
		if _, ok := names[c.Name]; ok {
			return errors.Errorf("chains[%d]: duplicate name %q", i, c.Name)
		}
		names[c.Name] = struct{}{}
	}
	return nil
}
