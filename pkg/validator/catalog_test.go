package validator_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtokit/pkg/rto"
	"github.com/dmitrymomot/rtokit/pkg/validator"
)

const catalogYAML = `
is_string: "%{property} doit être une chaîne"
is_email: "%{value} n'est pas une adresse valide pour %{target}"
min_length: "%{property} est trop court pour %{tenant}"
unknown: "%{property} %{missing}"
`

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := validator.LoadCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	assert.True(t, c.Has("is_email"))
	assert.False(t, c.Has("is_uuid"))

	_, err = validator.LoadCatalog([]byte("is_string: [unterminated"))
	assert.ErrorIs(t, err, validator.ErrInvalidCatalog)

	_, err = validator.LoadCatalog([]byte("# nothing here\n"))
	assert.ErrorIs(t, err, validator.ErrEmptyCatalog)
}

func TestCatalog_Message(t *testing.T) {
	t.Parallel()

	c, err := validator.LoadCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	assert.Nil(t, c.Message("is_uuid"))

	msg := c.Message("unknown")
	require.NotNil(t, msg)
	assert.Equal(t, "name %{missing}", msg(rto.MessageArgs{Property: "name"}))
}

func TestCatalog_LocalizeShape(t *testing.T) {
	t.Parallel()

	c, err := validator.LoadCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	original := rto.NewShape("Signup",
		rto.Field("name", validator.IsString(), validator.MinLen(3)),
		rto.Field("email", validator.IsEmail()),
		rto.Field("id", validator.IsUUID()),
	)
	shape := c.LocalizeShape(original)
	require.NotSame(t, original, shape)

	_, err = rto.Run(context.Background(), shape,
		map[string]any{"name": "al", "email": "nope", "id": "x"},
		rto.WithData(map[string]any{"tenant": "acme"}),
	)

	var agg *rto.AggregateError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, []string{"name est trop court pour acme"}, agg.Get("name"))
	assert.Equal(t, []string{"nope n'est pas une adresse valide pour Signup"}, agg.Get("email"))
	assert.Equal(t, []string{"'id' must be a UUID."}, agg.Get("id"))
}

func TestCatalog_Localize(t *testing.T) {
	t.Parallel()

	c := validator.NewCatalog(map[string]string{"is_bool": "%{property}: yes or no"})
	rules := c.Localize(validator.IsBool(), validator.IsString())
	require.Len(t, rules, 2)

	shape := rto.NewShape("Flags", rto.Field("on", rules...))
	_, err := rto.Run(context.Background(), shape, map[string]any{"on": 1})
	assert.Equal(t, []string{"on: yes or no", "'on' must be a string."}, rto.ExtractErrors(err)[0].Constraints)
}

func TestCatalog_LocalizeShapeKeepsOriginal(t *testing.T) {
	t.Parallel()

	c := validator.NewCatalog(map[string]string{"is_string": "%{property}: text expected"})
	original := rto.NewShape("Note", rto.Field("body", validator.IsString()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.LocalizeShape(original)
		}()
		go func() {
			defer wg.Done()
			_, _ = rto.Run(context.Background(), original, map[string]any{"body": 1})
		}()
	}
	wg.Wait()

	_, err := rto.Run(context.Background(), original, map[string]any{"body": 1})
	assert.Equal(t, []string{"'body' must be a string."}, rto.ExtractErrors(err)[0].Constraints)

	_, err = rto.Run(context.Background(), c.LocalizeShape(original), map[string]any{"body": 1})
	assert.Equal(t, []string{"body: text expected"}, rto.ExtractErrors(err)[0].Constraints)
}
