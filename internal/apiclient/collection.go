package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Collection returns the remote collection for the entity described by s.
// Admin requests are served by the identity endpoints and only support
// listing.
func (c *Client) Collection(s *types.Schema) types.Collection {
	if s.Name == types.EntityRequests {
		return &RequestCollection{client: c}
	}
	return &EntityCollection{client: c, entity: s.Name, noun: strings.ToLower(s.Singular)}
}

// EntityCollection is the CRUD endpoint set under /api/<entity>.
type EntityCollection struct {
	client *Client
	entity string
	noun   string
}

var _ types.Collection = (*EntityCollection)(nil)

// List fetches every record.
func (e *EntityCollection) List(ctx context.Context) ([]types.Record, error) {
	var out []types.Record
	_, err := e.client.do(ctx, call{
		op:       "list " + e.entity,
		method:   http.MethodGet,
		path:     e.path(),
		out:      &out,
		fallback: "Unable to get " + e.entity,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new record.
func (e *EntityCollection) Create(ctx context.Context, rec types.Record) error {
	_, err := e.client.do(ctx, call{
		op:       "create " + e.noun,
		method:   http.MethodPost,
		path:     e.path(),
		body:     rec,
		fallback: "Error creating " + e.noun,
	})
	return err
}

// Update replaces the record with the given id.
func (e *EntityCollection) Update(ctx context.Context, id int64, rec types.Record) error {
	_, err := e.client.do(ctx, call{
		op:       "update " + e.noun,
		method:   http.MethodPut,
		path:     e.path(strconv.FormatInt(id, 10)),
		body:     rec,
		fallback: "Error updating " + e.noun,
	})
	return err
}

// Delete removes the record with the given id.
func (e *EntityCollection) Delete(ctx context.Context, id int64) error {
	_, err := e.client.do(ctx, call{
		op:       "delete " + e.noun,
		method:   http.MethodDelete,
		path:     e.path(strconv.FormatInt(id, 10)),
		fallback: "Error deleting " + e.noun,
	})
	return err
}

func (e *EntityCollection) path(elem ...string) string {
	return "/api/" + strings.Join(append([]string{e.entity}, elem...), "/")
}

// RequestCollection lists pending admin registrations.
type RequestCollection struct {
	client *Client
}

var _ types.Collection = (*RequestCollection)(nil)

func (r *RequestCollection) List(ctx context.Context) ([]types.Record, error) {
	return r.client.ListAdminRequests(ctx)
}

func (r *RequestCollection) Create(context.Context, types.Record) error {
	return fmt.Errorf("create request: %w", types.ErrUnsupported)
}

func (r *RequestCollection) Update(context.Context, int64, types.Record) error {
	return fmt.Errorf("update request: %w", types.ErrUnsupported)
}

func (r *RequestCollection) Delete(context.Context, int64) error {
	return fmt.Errorf("delete request: %w", types.ErrUnsupported)
}
