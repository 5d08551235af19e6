package wirework

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigurationError
		want string
	}{
		{
			name: "missing method names the method",
			err:  &ConfigurationError{Method: "ShowB", Err: ErrMethodNotFound},
			want: `"ShowB"`,
		},
		{
			name: "no controller",
			err:  &ConfigurationError{Err: ErrNoController},
			want: "requires a controller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := tt.err.Error(); !strings.Contains(msg, tt.want) {
				t.Errorf("Error() = %q, want it to contain %q", msg, tt.want)
			}
		})
	}
}

func TestConfigurationErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("compiling routes: %w",
		&ConfigurationError{Method: "ShowB", Err: ErrMethodNotFound})

	if !errors.Is(err, ErrMethodNotFound) {
		t.Error("wrapped ConfigurationError should match ErrMethodNotFound")
	}
	if !IsMethodNotFound(err) {
		t.Error("IsMethodNotFound should see through wrapping")
	}
	if !IsConfigurationError(err) {
		t.Error("IsConfigurationError should see through wrapping")
	}
}

func TestIsHelpersRejectOtherErrors(t *testing.T) {
	err := errors.New("unrelated")
	if IsConfigurationError(err) {
		t.Error("IsConfigurationError matched an unrelated error")
	}
	if IsMethodNotFound(err) {
		t.Error("IsMethodNotFound matched an unrelated error")
	}
	if IsConfigurationError(nil) {
		t.Error("IsConfigurationError matched nil")
	}
}
