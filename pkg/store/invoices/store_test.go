package invoices

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOpener struct {
	mock.Mock
}

func (m *mockOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

const invoicesDoc = `[
  {
    "customer": "BigCo",
    "performances": [
      {"playID": "hamlet", "audience": 55},
      {"playID": "as-like", "audience": 35},
      {"playID": "othello", "audience": 40}
    ]
  }
]`

func TestDecode(t *testing.T) {
	invoices, err := Decode(strings.NewReader(invoicesDoc))

	require.NoError(t, err)
	assert.Equal(t, []domain.Invoice{{
		Customer: "BigCo",
		Performances: []domain.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "othello", Audience: 40},
		},
	}}, invoices)
}

func TestDecode_SingleObject(t *testing.T) {
	invoices, err := Decode(strings.NewReader(`{"customer": "Solo", "performances": []}`))

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "Solo", invoices[0].Customer)
	assert.Empty(t, invoices[0].Performances)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
	}{
		{name: "negative audience", doc: `[{"customer": "X", "performances": [{"playID": "hamlet", "audience": -1}]}]`, sentinel: domain.ErrInvalidInvoice},
		{name: "missing play id", doc: `[{"customer": "X", "performances": [{"audience": 3}]}]`, sentinel: domain.ErrInvalidInvoice},
		{name: "missing customer", doc: `[{"performances": []}]`, sentinel: domain.ErrInvalidInvoice},
		{name: "malformed", doc: `[{"customer": `},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))

			require.Error(t, err)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	opener := new(mockOpener)
	opener.On("Open", mock.Anything, "invoices.json").
		Return(io.NopCloser(strings.NewReader(invoicesDoc)), nil)

	invoices, err := Load(context.Background(), opener, "invoices.json")

	require.NoError(t, err)
	assert.Len(t, invoices, 1)
	opener.AssertExpectations(t)
}

func TestLoad_OpenError(t *testing.T) {
	opener := new(mockOpener)
	opener.On("Open", mock.Anything, "missing.json").Return(nil, errors.New("not found"))

	_, err := Load(context.Background(), opener, "missing.json")

	assert.EqualError(t, err, "not found")
}
