package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/classhub/internal/session"
)

func TestGate_Unlock(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		candidate string
		want      bool
	}{
		{name: "correct secret", secret: "s3cret", candidate: "s3cret", want: true},
		{name: "wrong secret", secret: "s3cret", candidate: "guess", want: false},
		{name: "case sensitive", secret: "s3cret", candidate: "S3cret", want: false},
		{name: "unset secret always denies", secret: "", candidate: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.secret)
			sess := session.New(0, 0)

			got := g.Unlock(sess, tt.candidate)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, sess.IsAdmin(), "admin flag must follow the unlock result")
		})
	}
}

func TestGate_Enabled(t *testing.T) {
	assert.True(t, NewGate("x").Enabled())
	assert.False(t, NewGate("").Enabled())
}
