package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
)

func TestResponseRouter(t *testing.T) {
	newRouter := func() *ResponseRouter {
		r := NewResponseRouter("fallback", logger.NewNopLogger())
		r.Register(usecase.NewAnyKeywordRule("first", "first reply", "runway"))
		r.Register(usecase.NewAnyKeywordRule("second", "second reply", "runway", "gate"))
		return r
	}

	t.Run("First registered match wins", func(t *testing.T) {
		assert.Equal(t, "first reply", newRouter().Reply("runway and gate"))
	})

	t.Run("Later rule answers when earlier ones do not match", func(t *testing.T) {
		assert.Equal(t, "second reply", newRouter().Reply("which gate?"))
	})

	t.Run("Fallback when nothing matches", func(t *testing.T) {
		r := newRouter()
		assert.Nil(t, r.GetRule("weather"))
		assert.Equal(t, "fallback", r.Reply("weather"))
	})

	t.Run("Empty router always falls back", func(t *testing.T) {
		r := NewResponseRouter("fallback", logger.NewNopLogger())
		assert.Equal(t, "fallback", r.Reply("runway"))
	})
}
