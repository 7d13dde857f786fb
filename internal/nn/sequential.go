package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
type Sequential[P any] struct {
	modules []Module[P]
}

// NewSequential creates a new Sequential container.
func NewSequential[P any](modules ...Module[P]) *Sequential[P] {
	return &Sequential[P]{modules: modules}
}

// Forward applies all modules in sequence.
func (s *Sequential[P]) Forward(input *autodiff.Node[P]) (*autodiff.Node[P], error) {
	output := input
	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, errors.Wrapf(err, "sequential: module %d (%T)", i, module)
		}
	}
	return output, nil
}

// Parameters returns the parameters of every module, prefixed by the module
// index: "0.weight", "0.bias", ...
func (s *Sequential[P]) Parameters() []*Parameter[P] {
	var params []*Parameter[P]
	for i, module := range s.modules {
		for _, p := range module.Parameters() {
			params = append(params, &Parameter[P]{
				name: fmt.Sprintf("%d.%s", i, p.name),
				node: p.node,
			})
		}
	}
	return params
}

// Len returns the number of modules.
func (s *Sequential[P]) Len() int {
	return len(s.modules)
}
