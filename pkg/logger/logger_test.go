package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El campo service queda fijo en cada línea y la salida fuera de development es JSON.
func TestLogger_CampoServicio(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "bodega-api", Out: &buf})

	l.Info().Str("sku", "ELEC-001").Msg("producto creado")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"bodega-api"`)
	assert.Contains(t, out, `"sku":"ELEC-001"`)
	assert.Contains(t, out, `"level":"info"`)
}

// Un nivel desconocido cae en info: debug se descarta, info pasa.
func TestLogger_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "verboso", Out: &buf})

	l.Debug().Msg("no debería salir")
	assert.Empty(t, buf.String())

	l.Info().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}

// Con nivel warn se descartan info y debug.
func TestLogger_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Out: &buf})

	l.Info().Msg("descartado")
	require.Empty(t, buf.String())

	l.Warn().Msg("registrado")
	assert.Contains(t, buf.String(), "registrado")
}
