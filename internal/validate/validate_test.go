package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/classhub/internal/common"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "ok", in: "John Doe", want: "John Doe"},
		{name: "trims whitespace", in: "  Jane Doe \n", want: "Jane Doe"},
		{name: "hyphen and period", in: "Mary-Jane St. Clair", want: "Mary-Jane St. Clair"},
		{name: "empty", in: "", wantErr: common.ErrNameEmpty},
		{name: "whitespace only", in: " \t\n ", wantErr: common.ErrNameEmpty},
		{name: "only stripped chars", in: `<>"&`, wantErr: common.ErrNameEmpty},
		{name: "markup stripped before checks", in: `<Jane "Doe">`, want: "Jane Doe"},
		{name: "single char", in: "J", wantErr: common.ErrNameTooShort},
		{name: "digits rejected", in: "John 3rd", wantErr: common.ErrNameInvalidChars},
		{name: "truncated to max", in: strings.Repeat("a", 80), want: strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "ok", in: "john-doe-123", want: "john-doe-123"},
		{name: "case preserved", in: "John-Doe_123.x", want: "John-Doe_123.x"},
		{name: "trims whitespace", in: "  jane-doe  ", want: "jane-doe"},
		{name: "empty", in: "", wantErr: common.ErrHandleEmpty},
		{name: "whitespace only", in: "   ", wantErr: common.ErrHandleEmpty},
		{name: "only stripped chars", in: `<'&>`, wantErr: common.ErrHandleEmpty},
		{name: "embedded space", in: "john doe", wantErr: common.ErrHandleHasSpace},
		{name: "embedded tab", in: "john\tdoe", wantErr: common.ErrHandleHasSpace},
		{name: "illegal char", in: "john/doe", wantErr: common.ErrHandleInvalidChars},
		{name: "two chars", in: "ab", wantErr: common.ErrHandleTooShort},
		{name: "three chars ok", in: "abc", want: "abc"},
		{name: "truncated to max", in: strings.Repeat("x", 150), want: strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Handle(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
