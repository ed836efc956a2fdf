// architecture_test.go
package architecture_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/Nazarious-ucu/environment-prediction-api`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	// Layers as regexes over import-path prefixes.
	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	engineLayer, err := arctest.NewLayer("engine",
		`^`+mod+`/internal/services/(prediction|scenarios)`)
	require.NoError(t, err)

	httpLayer, err := arctest.NewLayer("http", `^`+mod+`/internal/handlers`)
	require.NoError(t, err)

	infraLayer, err := arctest.NewLayer("infrastructure",
		`^`+mod+`/internal/(config|services/weather|services/satellite|services/metrics|services/logger)`,
		`^`+mod+`/pkg/logger`,
	)
	require.NoError(t, err)

	compositionLayer, err := arctest.NewLayer("composition", `^`+mod+`/internal/app`)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(
		domainLayer, engineLayer, httpLayer, infraLayer, compositionLayer)

	// The engine and handlers see only the domain models; concrete sources
	// are injected by the composition root.
	err = engineLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = httpLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = infraLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = compositionLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = compositionLayer.DependsOnLayer(engineLayer)
	assert.NoError(t, err)

	err = compositionLayer.DependsOnLayer(httpLayer)
	assert.NoError(t, err)

	err = compositionLayer.DependsOnLayer(infraLayer)
	assert.NoError(t, err)

	violations, err := layered.Check()
	require.NoError(t, err)

	assert.Len(t, violations, 0)

	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
