package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// CheckRequirement reports whether version satisfies the PEP 440 style
// specifier set from the template require field. An empty require always
// passes.
func CheckRequirement(version string, require string) (bool, error) {
	if require == "" {
		return true, nil
	}
	spec, err := pep440.NewSpecifiers(require)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid template require %q", require)).
			WithCause(err)
	}
	parsed, err := pep440.Parse(version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("installed version %q is not a valid version", version)).
			WithCause(err)
	}
	return spec.Check(parsed), nil
}
