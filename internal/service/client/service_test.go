package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexinvo/gstledger/internal/ledger"
)

type fakeStore struct {
	clients map[int64]ledger.Client
	nextID  int64
	failAll bool
}

func newFakeStore() *fakeStore { return &fakeStore{clients: map[int64]ledger.Client{}} }

func (f *fakeStore) ListClients(context.Context) ([]ledger.Client, error) {
	out := make([]ledger.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) GetClient(_ context.Context, id int64) (ledger.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return ledger.Client{}, errors.New("not found")
	}
	return c, nil
}

func (f *fakeStore) CreateClient(_ context.Context, c ledger.Client) (ledger.Client, error) {
	if f.failAll {
		return ledger.Client{}, errors.New("db down")
	}
	f.nextID++
	c.ID = f.nextID
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeStore) UpdateClient(_ context.Context, c ledger.Client) (ledger.Client, error) {
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeStore) DeleteClient(_ context.Context, id int64) error {
	delete(f.clients, id)
	return nil
}

func valid() ledger.Client {
	return ledger.Client{
		Name:      "Acme Traders",
		Email:     "accounts@acmetraders.in",
		State:     "Maharashtra",
		StateCode: "27",
		GSTIN:     "27ABCDE1234F1Z5",
		PAN:       "ABCDE1234F",
	}
}

func TestCreate_GeneratesCode(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)

	created, err := svc.Create(context.Background(), valid())
	require.NoError(t, err)
	assert.Equal(t, "CL0001", created.Code)

	c2 := valid()
	c2.Code = "CUSTOM"
	created2, err := svc.Create(context.Background(), c2)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", created2.Code)
}

func TestCreate_DerivesStateCodeFromName(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)

	c := valid()
	c.StateCode = ""
	created, err := svc.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "27", created.StateCode)
}

func TestValidate_HardGate(t *testing.T) {
	svc := New(newFakeStore(), newFakeStore())

	tests := []struct {
		name   string
		mutate func(*ledger.Client)
	}{
		{"missing name", func(c *ledger.Client) { c.Name = "" }},
		{"missing email", func(c *ledger.Client) { c.Email = "" }},
		{"gstin wrong length", func(c *ledger.Client) { c.GSTIN = "27AB" }},
		{"gstin state mismatch", func(c *ledger.Client) { c.GSTIN = "07ABCDE1234F1Z5" }},
		{"pan wrong length", func(c *ledger.Client) { c.PAN = "ABCDE" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, svc.Validate(c))
		})
	}

	// empty gstin and pan pass the gate
	c := valid()
	c.GSTIN = ""
	c.PAN = ""
	assert.NoError(t, svc.Validate(c))
}

func TestBulkCreate_AggregateCounts(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)

	bad := valid()
	bad.GSTIN = "07ABCDE1234F1Z5" // state mismatch
	res := svc.BulkCreate(context.Background(), []ledger.Client{valid(), bad, valid()})
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}

func TestParseBulkCSV_Template(t *testing.T) {
	svc := New(newFakeStore(), newFakeStore())
	clients, rejects, err := ParseBulkCSV(strings.NewReader(Template()), svc.Validate)
	require.NoError(t, err)
	assert.Empty(t, rejects)
	require.Len(t, clients, 2)
	assert.Equal(t, "Acme Traders", clients[0].Name)
	assert.Equal(t, "27", clients[0].StateCode)
	require.NotNil(t, clients[0].DateOfIncorporation)
	assert.Equal(t, 2010, clients[0].DateOfIncorporation.Year())
	require.NotNil(t, clients[1].DateOfBirth)
}

func TestParseBulkCSV_RowErrors(t *testing.T) {
	svc := New(newFakeStore(), newFakeStore())
	in := strings.Join(bulkHeader, ",") + "\n" +
		"No Email Client,,,,,,,,,,,,,\n" +
		"Bad GST,,bad@example.in,,,,,Maharashtra,,27,07ABCDE1234F1Z5,,,\n" +
		"Good,,good@example.in,,,,,Maharashtra,,27,,,,\n"
	clients, rejects, err := ParseBulkCSV(strings.NewReader(in), svc.Validate)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Len(t, rejects, 2)
	assert.Equal(t, 2, rejects[0].Row)
	assert.Contains(t, rejects[0].Reason, "email")
	assert.Equal(t, "Bad GST", rejects[1].Name)
}
