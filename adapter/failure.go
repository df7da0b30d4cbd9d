package adapter

import (
	"errors"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/layout"
	"github.com/awantoch/edgebridge/registry"
)

// Failure classifies why a load did not bind an application.
type Failure int

const (
	FailureNone Failure = iota
	// FailurePath means the backend directory could not be resolved.
	FailurePath
	// FailureImport means the backend factory itself failed.
	FailureImport
	// FailureSymbol means no application is registered under the expected name.
	FailureSymbol
	// FailureConfig means the configuration was rejected before loading started.
	FailureConfig
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return constants.OutcomeOK
	case FailurePath:
		return constants.OutcomePath
	case FailureSymbol:
		return constants.OutcomeSymbol
	case FailureConfig:
		return constants.OutcomeConfig
	default:
		return constants.OutcomeImport
	}
}

// ExitCode is the CLI exit status for the failure class.
func (f Failure) ExitCode() int {
	switch f {
	case FailureNone:
		return constants.ExitOK
	case FailurePath:
		return constants.ExitPathFailure
	case FailureSymbol:
		return constants.ExitSymbol
	case FailureConfig:
		return constants.ExitConfig
	default:
		return constants.ExitImport
	}
}

// Classify maps a load error onto its failure class. Errors the adapter does not
// recognise came from the backend and count as import failures.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case layout.IsResolution(err):
		return FailurePath
	case registry.IsResolution(err):
		return FailureSymbol
	case errors.Is(err, config.ErrConfigNotValid),
		errors.Is(err, config.ErrEnvVariablesNotValid),
		errors.Is(err, config.ErrUnsupportedFormat):
		return FailureConfig
	default:
		return FailureImport
	}
}
