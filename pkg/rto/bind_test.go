package rto_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtokit/pkg/rto"
	"github.com/dmitrymomot/rtokit/pkg/sanitizer"
	"github.com/dmitrymomot/rtokit/pkg/validator"
)

type signup struct {
	Email    string    `rto:"email"`
	Age      int       `rto:"age"`
	Birthday time.Time `rto:"birthday"`
	Tags     []string  `rto:"tags"`
}

var signupShape = rto.NewShape("Signup",
	rto.Field("email", validator.IsEmail(rto.WithTransform(sanitizer.String(sanitizer.NormalizeEmail)))),
	rto.Field("age", validator.IsInt(), validator.Min(18)),
	rto.Field("birthday", validator.IsDate(rto.WithTransform(sanitizer.ParseDate()))),
	rto.Field("tags", validator.IsString(rto.Each())).WithDefault([]any{}),
)

func TestBind(t *testing.T) {
	t.Parallel()

	got, err := rto.Bind[signup](context.Background(), signupShape, map[string]any{
		"email":    " Neo@Matrix.io",
		"age":      float64(30),
		"birthday": "1990-05-17",
		"tags":     []any{"admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "neo@matrix.io", got.Email)
	assert.Equal(t, 30, got.Age)
	assert.True(t, got.Birthday.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"admin"}, got.Tags)

	_, err = rto.Bind[signup](context.Background(), signupShape, map[string]any{"email": "neo"})
	assert.True(t, rto.IsValidationError(err))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	var dst struct {
		Timeout time.Duration `rto:"timeout"`
		Name    string        `rto:"name"`
	}
	err := rto.Decode(rto.Object{
		"timeout": "5s",
		"name":    rto.Getter(func() any { return "svc" }),
	}, &dst)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, dst.Timeout)
	assert.Equal(t, "svc", dst.Name)

	assert.ErrorIs(t, rto.Decode(rto.Object{}, dst), rto.ErrDecode)
}

func TestRunValue(t *testing.T) {
	t.Parallel()

	shape := rto.NewShape("User",
		rto.Field("name", validator.IsString()),
		rto.Field("age", validator.IsInt()),
	)

	type user struct {
		Name string `mapstructure:"name"`
		Age  int    `mapstructure:"age"`
	}

	obj, err := rto.RunValue(context.Background(), shape, user{Name: "neo", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, rto.Object{"name": "neo", "age": 30}, obj)

	_, err = rto.RunValue(context.Background(), shape, 42)
	assert.ErrorIs(t, err, rto.ErrInvalidPayload)

	_, err = rto.RunValue(context.Background(), shape, nil)
	assert.True(t, rto.IsValidationError(err))
}
