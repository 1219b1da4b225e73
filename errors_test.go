package hypermedia

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrMissingMessageResolver, RelationMessagesName)

	if !errors.Is(err, ErrMissingMessageResolver) {
		t.Error("ConfigError should unwrap to ErrMissingMessageResolver")
	}
	if errors.Is(err, ErrMissingRelationResolver) {
		t.Error("ConfigError should not match ErrMissingRelationResolver")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "resource and cause",
			err: &ConfigError{
				Err:      ErrMissingMessageResolver,
				Resource: RelationMessagesName,
				Cause:    errors.New("registry closed"),
			},
			want: `missing message resolver "link-relation-messages": registry closed`,
		},
		{
			name: "resource only",
			err:  newConfigError(ErrMissingMessageResolver, RelationMessagesName),
			want: `missing message resolver "link-relation-messages"`,
		},
		{
			name: "sentinel only",
			err:  newConfigError(ErrMissingRelationResolver, ""),
			want: "missing relation resolver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
