package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/layout"
	"github.com/awantoch/edgebridge/registry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     Failure
		outcome  string
		exitCode int
	}{
		{"nil", nil, FailureNone, constants.OutcomeOK, constants.ExitOK},
		{"missing dir", fmt.Errorf("%w: /x/backend", layout.ErrNotFound), FailurePath, constants.OutcomePath, constants.ExitPathFailure},
		{"not a dir", layout.ErrNotDirectory, FailurePath, constants.OutcomePath, constants.ExitPathFailure},
		{"not registered", fmt.Errorf("%w: %q", registry.ErrNotRegistered, "app"), FailureSymbol, constants.OutcomeSymbol, constants.ExitSymbol},
		{"nil app", registry.ErrNilApplication, FailureSymbol, constants.OutcomeSymbol, constants.ExitSymbol},
		{"config", config.ErrConfigNotValid, FailureConfig, constants.OutcomeConfig, constants.ExitConfig},
		{"backend", errors.New("boom"), FailureImport, constants.OutcomeImport, constants.ExitImport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.outcome, got.String())
			assert.Equal(t, tt.exitCode, got.ExitCode())
		})
	}
}
