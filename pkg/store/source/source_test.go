package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectGetter struct {
	mock.Mock
}

func (m *mockObjectGetter) GetObject(
	ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(params.Bucket), aws.ToString(params.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestOpen_LocalFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plays.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))

	rc, err := NewOpener().Open(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, `{}`, readAll(t, rc))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := NewOpener().Open(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_Stdin(t *testing.T) {
	rc, err := NewOpener(WithStdin(strings.NewReader("[]"))).Open(context.Background(), Stdin)

	require.NoError(t, err)
	assert.Equal(t, "[]", readAll(t, rc))
}

func TestOpen_S3(t *testing.T) {
	client := new(mockObjectGetter)
	client.On("GetObject", mock.Anything, "billing", "2024/invoices.json").
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("[1]"))}, nil)

	rc, err := NewOpener(WithS3Client(client)).Open(context.Background(), "s3://billing/2024/invoices.json")

	require.NoError(t, err)
	assert.Equal(t, "[1]", readAll(t, rc))
	client.AssertExpectations(t)
}

func TestOpen_S3Error(t *testing.T) {
	client := new(mockObjectGetter)
	client.On("GetObject", mock.Anything, "billing", "missing.json").
		Return(nil, errors.New("NoSuchKey"))

	_, err := NewOpener(WithS3Client(client)).Open(context.Background(), "s3://billing/missing.json")

	assert.EqualError(t, err, "failed to get s3://billing/missing.json: NoSuchKey")
}

func TestOpen_InvalidLocations(t *testing.T) {
	opener := NewOpener(WithS3Client(new(mockObjectGetter)))

	for _, location := range []string{"", "s3://bucket-only", "s3:///key.json"} {
		_, err := opener.Open(context.Background(), location)
		assert.Error(t, err, location)
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".yaml", Ext("catalog/plays.YAML"))
	assert.Equal(t, ".ini", Ext("s3://bucket/conf/plays.ini"))
	assert.Equal(t, "", Ext(Stdin))
}
