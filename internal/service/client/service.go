// Package client implements the client registry: GST/state-consistent
// client records with bulk CSV upload.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexinvo/gstledger/internal/dictionary"
	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/gst"
	"github.com/nexinvo/gstledger/internal/ledger"
)

type Repo interface {
	ListClients(ctx context.Context) ([]ledger.Client, error)
	GetClient(ctx context.Context, id int64) (ledger.Client, error)
}

type Writer interface {
	CreateClient(ctx context.Context, c ledger.Client) (ledger.Client, error)
	UpdateClient(ctx context.Context, c ledger.Client) (ledger.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

type Service interface {
	Validate(c ledger.Client) error
	Create(ctx context.Context, c ledger.Client) (ledger.Client, error)
	List(ctx context.Context) ([]ledger.Client, error)
	Get(ctx context.Context, id int64) (ledger.Client, error)
	Update(ctx context.Context, c ledger.Client) (ledger.Client, error)
	Delete(ctx context.Context, id int64) error
	BulkCreate(ctx context.Context, clients []ledger.Client) BulkResult
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

// Validate is the hard save gate: unlike the incremental GSTIN feedback in
// the form, a failure here rejects the record outright.
func (s *service) Validate(c ledger.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required")
	}
	if err := gst.ValidateGSTIN(c.GSTIN, c.StateCode); err != nil {
		return err
	}
	return gst.ValidatePAN(c.PAN)
}

// normalize derives the state code from the state name when absent and
// uppercases identifiers.
func normalize(c ledger.Client) ledger.Client {
	c.Name = strings.TrimSpace(c.Name)
	c.GSTIN = strings.ToUpper(strings.TrimSpace(c.GSTIN))
	c.PAN = strings.ToUpper(strings.TrimSpace(c.PAN))
	if c.StateCode == "" && c.State != "" {
		if code, ok := dictionary.StateCode(c.State); ok {
			c.StateCode = code
		}
	}
	return c
}

func (s *service) Create(ctx context.Context, c ledger.Client) (ledger.Client, error) {
	c = normalize(c)
	if err := s.Validate(c); err != nil {
		return ledger.Client{}, err
	}
	created, err := s.writer.CreateClient(ctx, c)
	if err != nil {
		return ledger.Client{}, err
	}
	// Code is server-generated when left blank.
	if created.Code == "" {
		created.Code = fmt.Sprintf("CL%04d", created.ID)
		return s.writer.UpdateClient(ctx, created)
	}
	return created, nil
}

func (s *service) List(ctx context.Context) ([]ledger.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (ledger.Client, error) {
	if id == 0 {
		return ledger.Client{}, errs.ErrInvalid
	}
	return s.repo.GetClient(ctx, id)
}

func (s *service) Update(ctx context.Context, c ledger.Client) (ledger.Client, error) {
	if c.ID == 0 {
		return ledger.Client{}, errs.ErrInvalid
	}
	c = normalize(c)
	if err := s.Validate(c); err != nil {
		return ledger.Client{}, fmt.Errorf("%w: %s", errs.ErrUnprocessable, err)
	}
	if _, err := s.repo.GetClient(ctx, c.ID); err != nil {
		return ledger.Client{}, err
	}
	return s.writer.UpdateClient(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return errs.ErrInvalid
	}
	return s.writer.DeleteClient(ctx, id)
}

// BulkResult is the aggregate outcome of a bulk upload.
type BulkResult struct {
	Succeeded int
	Failed    int
}

// BulkCreate saves the parsed clients one by one, in row order, without a
// transaction. A failed row does not stop or roll back the rest.
func (s *service) BulkCreate(ctx context.Context, clients []ledger.Client) BulkResult {
	var res BulkResult
	for _, c := range clients {
		if _, err := s.Create(ctx, c); err != nil {
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	return res
}
