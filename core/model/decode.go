package model

import (
	"fmt"
	"strings"

	"github.com/kilianp07/batterycf/core/factory"
)

// DecodeParameters overlays raw key/value settings on DefaultParameters and
// validates the result. Keys that match no parameter are returned as warnings
// and otherwise ignored; an unknown contribution factor is never fatal.
func DecodeParameters(raw map[string]any) (Parameters, []string, error) {
	p := DefaultParameters()
	unused, err := factory.DecodeReport(raw, &p)
	if err != nil {
		return Parameters{}, nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	var warnings []string
	for _, key := range unused {
		if group, name, ok := strings.Cut(key, "."); ok && strings.EqualFold(group, "contributionFactor") {
			warnings = append(warnings, fmt.Sprintf("contributionFactor node %q is not valid and was ignored", name))
			continue
		}
		warnings = append(warnings, fmt.Sprintf("unknown parameter %q ignored", key))
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, warnings, err
	}
	return p, warnings, nil
}
