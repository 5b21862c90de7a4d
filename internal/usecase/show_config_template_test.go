package usecase_test

import (
	"context"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	t.Run("renders defaults when config is nil", func(t *testing.T) {
		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{})

		require.NoError(t, err)
		assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), out.Template)
	})

	t.Run("renders given values", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Registry.Concurrency = 3

		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{Config: cfg})

		require.NoError(t, err)
		var decoded map[string]any
		err = toml.Unmarshal([]byte(out.Template), &decoded)
		require.NoError(t, err)
		assert.Contains(t, out.Template, "concurrency = 3")
	})
}
