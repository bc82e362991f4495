package rto_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtokit/pkg/rto"
	"github.com/dmitrymomot/rtokit/pkg/validator"
)

var addressShape = rto.NewShape("Address",
	rto.Field("street", validator.IsString()),
	rto.Field("zip", validator.Matches(`^\d{5}$`)),
)

func TestNested_Object(t *testing.T) {
	t.Parallel()

	shape := rto.NewShape("Customer",
		rto.Field("name", validator.IsString()),
		rto.Field("address", rto.Nested(addressShape)),
	)

	t.Run("valid child replaces the raw value", func(t *testing.T) {
		obj, err := rto.Run(context.Background(), shape, map[string]any{
			"name":    "neo",
			"address": map[string]any{"street": "Main", "zip": "12345", "floor": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, rto.Object{"street": "Main", "zip": "12345"}, obj["address"])
	})

	t.Run("child errors become children", func(t *testing.T) {
		_, err := rto.Run(context.Background(), shape, map[string]any{
			"name":    "neo",
			"address": map[string]any{"street": "Main", "zip": "abc"},
		})
		var agg *rto.AggregateError
		require.ErrorAs(t, err, &agg)
		require.Len(t, agg.Errors, 1)

		parent := agg.Errors[0]
		assert.Equal(t, "address", parent.Property)
		assert.Equal(t, []string{"'address' must be a valid Address object."}, parent.Constraints)
		require.Len(t, parent.Children, 1)
		assert.Equal(t, &rto.ValidationError{
			Property:    "zip",
			Constraints: []string{`'zip' must match ^\d{5}$ regular expression.`},
			Value:       "abc",
			PlainValue:  "abc",
			Target:      "Address",
		}, parent.Children[0])

		assert.Equal(t, rto.Document{
			"address": rto.Branch{
				Message: "'address' must be a valid Address object.",
				Properties: rto.Document{
					"zip": []rto.Entry{{
						Constraints: []string{`'zip' must match ^\d{5}$ regular expression.`},
						Value:       "abc",
						PlainValue:  "abc",
					}},
				},
			},
		}, agg.Document)
	})

	t.Run("non object value fails without children", func(t *testing.T) {
		errs := rto.ExtractErrors(runErr(rto.Run(context.Background(), shape, map[string]any{"name": "neo", "address": "Main st"})))
		require.Len(t, errs, 1)
		assert.Empty(t, errs[0].Children)
		assert.Equal(t, "Main st", errs[0].Value)
	})

	t.Run("failed child is not assigned", func(t *testing.T) {
		payload := map[string]any{
			"name":    "neo",
			"address": map[string]any{"zip": "abc", "isAdmin": true},
		}

		obj, err := rto.Run(context.Background(), shape, payload, rto.WithFailureHandler(rto.IgnoreFailures))
		require.NoError(t, err)
		assert.Equal(t, rto.Object{"name": "neo"}, obj)

		obj, err = rto.Run(context.Background(), shape, payload,
			rto.WithFailureHandler(rto.IgnoreFailures),
			rto.ExcludeExtraneousValues(false),
		)
		require.NoError(t, err)
		assert.Equal(t, payload["address"], obj["address"], "whitelist off copies the raw payload value")
	})

	t.Run("missing child is required", func(t *testing.T) {
		errs := rto.ExtractErrors(runErr(rto.Run(context.Background(), shape, map[string]any{"name": "neo"})))
		require.Len(t, errs, 1)
		assert.Equal(t, "address", errs[0].Property)
	})
}

func TestNested_Array(t *testing.T) {
	t.Parallel()

	item := rto.NewShape("Item",
		rto.Field("sku", validator.IsString()),
		rto.Field("qty", validator.IsInt(), validator.Min(1)),
	)
	shape := rto.NewShape("Order", rto.Field("items", rto.Nested(item, rto.Each())))

	payload := map[string]any{"items": []any{
		map[string]any{"sku": "a", "qty": 1},
		map[string]any{"sku": "b", "qty": 0},
		"bogus",
	}}

	_, err := rto.Run(context.Background(), shape, payload)
	var agg *rto.AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Errors, 1)

	parent := agg.Errors[0]
	assert.Equal(t, []string{"'items' must be a valid Item object."}, parent.Constraints)
	require.Len(t, parent.Children, 2)
	assert.Equal(t, "1", parent.Children[0].Property)
	assert.Equal(t, "2", parent.Children[1].Property)
	assert.Equal(t, "bogus", parent.Children[1].Value)

	assert.Equal(t, rto.Document{
		"items": rto.Branch{
			Message: "'items' must be a valid Item object.",
			Properties: rto.Document{
				"1": rto.Branch{
					Message: "'items[1]' must be a valid Item object.",
					Properties: rto.Document{
						"qty": []rto.Entry{{
							Constraints: []string{"'qty' must not be less than 1."},
							Value:       0,
							PlainValue:  0,
						}},
					},
				},
				"2": []rto.Entry{{
					Constraints: []string{"'items[2]' must be a valid Item object."},
					Value:       "bogus",
					PlainValue:  "bogus",
				}},
			},
		},
	}, agg.Document)

	obj, err := rto.Run(context.Background(), shape, payload, rto.WithFailureHandler(rto.IgnoreFailures))
	require.NoError(t, err)
	assert.False(t, obj.Has("items"), "failed arrays are not assigned")
}

func TestNested_ShapePath(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)
	record := validator.CustomAsync("record", func(ctx context.Context, _ any, _ rto.View) (bool, error) {
		path, _ := rto.ShapePath(ctx)
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return true, nil
	}, "")

	line := rto.NewShape("Line", rto.Field("sku", record))
	shape := rto.NewShape("Order",
		rto.Field("id", record),
		rto.Field("lines", rto.Nested(line, rto.Each())),
	)

	_, err := rto.Run(context.Background(), shape, map[string]any{
		"id":    "o-1",
		"lines": []any{map[string]any{"sku": "a"}, map[string]any{"sku": "b"}},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Order", "Order.lines[0]", "Order.lines[1]"}, paths)
}

func runErr(_ rto.Object, err error) error {
	return err
}
