package utils

import (
	"errors"
	"strings"
	"testing"

	"gopress/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin validates binding tags through go-playground/validator; the same
// engine is reproduced here to exercise FieldErrors directly.
func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestFieldErrorsAtLimits(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(models.PostForm{Title: strings.Repeat("r", 128), Content: strings.Repeat("r", 3000)})
	assert.NoError(t, err)

	err = v.Struct(models.CommentForm{Content: strings.Repeat("r", 512)})
	assert.NoError(t, err)
}

func TestFieldErrorsTitleTooLong(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(models.PostForm{Title: strings.Repeat("r", 129), Content: "fine"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Contains(t, fields, "title")
	assert.Equal(t, "Title cannot be more than 128 characters.", fields["title"])
	assert.NotContains(t, fields, "content")
}

func TestFieldErrorsContentTooLong(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(models.PostForm{Title: "fine", Content: strings.Repeat("r", 3001)})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Contains(t, fields, "content")
	assert.Equal(t, "Content cannot be more than 3000 characters.", fields["content"])
}

func TestFieldErrorsCommentTooLong(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(models.CommentForm{Content: strings.Repeat("r", 513)})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Content cannot be more than 512 characters.", fields["content"])
}

func TestFieldErrorsCollectsAllFields(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(models.PostForm{})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "content")
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))
	assert.Contains(t, fields, "form")
}
