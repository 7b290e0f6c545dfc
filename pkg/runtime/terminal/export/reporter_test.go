package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err error
}

func (s stubRenderer) Render(_ context.Context, w io.Writer, stmt domain.Statement, format string) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, format+":"+stmt.Customer()+"\n")
	return err
}

func TestReporter_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, stubRenderer{}, "")

	for _, customer := range []string{"BigCo", "SmallCo"} {
		path, err := r.Handle(context.Background(), domain.NewStatement(customer, nil), "text")
		require.NoError(t, err)
		assert.Empty(t, path)
	}

	assert.Equal(t, "text:BigCo\n\ntext:SmallCo\n", buf.String())
}

func TestReporter_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := NewReporter(nil, stubRenderer{}, dir)

	first, err := r.Handle(context.Background(), domain.NewStatement("Big Co.", nil), "pdf")
	require.NoError(t, err)
	second, err := r.Handle(context.Background(), domain.NewStatement("Big Co.", nil), "text")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "big-co.pdf"), first)
	assert.Equal(t, filepath.Join(dir, "big-co.txt"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "pdf:Big Co.\n", string(data))
}

func TestReporter_NeverReusesAFileName(t *testing.T) {
	dir := t.TempDir()
	r := NewReporter(nil, stubRenderer{}, dir)

	var paths []string
	for _, customer := range []string{"BigCo", "BigCo", "BigCo 2"} {
		path, err := r.Handle(context.Background(), domain.NewStatement(customer, nil), "text")
		require.NoError(t, err)
		paths = append(paths, path)
	}

	assert.Equal(t, []string{
		filepath.Join(dir, "bigco.txt"),
		filepath.Join(dir, "bigco-2.txt"),
		filepath.Join(dir, "bigco-2-2.txt"),
	}, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "text:BigCo\n", string(data))
}

func TestReporter_RemovesFileOnRenderError(t *testing.T) {
	dir := t.TempDir()
	r := NewReporter(nil, stubRenderer{err: errors.New("boom")}, dir)

	_, err := r.Handle(context.Background(), domain.NewStatement("BigCo", nil), "xlsx")

	assert.EqualError(t, err, "boom")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "bigco", slug("BigCo"))
	assert.Equal(t, "acme-theatre-ltd", slug("  ACME Theatre, Ltd. "))
	assert.Equal(t, "statement", slug("!!!"))
}
