package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  jane-doe  \n"))

	got, err := GetSimpleText(r, "Your handle:", &out)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", got)
	assert.Contains(t, out.String(), "Your handle:")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("jane-doe"))

	got, err := GetSimpleText(r, "Your handle:", &out)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Your handle:", &out)
	require.Error(t, err)
}

func TestGetSecret(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	var out bytes.Buffer
	got, err := GetSecret(&out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.Contains(t, out.String(), "Enter admin password:")
}

func TestGetSecret_TerminalError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return nil, errors.New("not a terminal")
	}

	var out bytes.Buffer
	_, err := GetSecret(&out)
	require.Error(t, err)
}
