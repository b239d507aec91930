package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/infrastructure/metrics"
)

var results = []domain.Result{
	{Strategy: "Linear", Kind: domain.Linear, Worst: domain.Case{Threshold: 100, Probes: 100}},
	{Strategy: "Chunked{size: 10}", Kind: domain.Chunked, Worst: domain.Case{Threshold: 99, Probes: 19}},
}

func TestNew(t *testing.T) {
	r, err := New("text")
	require.NoError(t, err)
	assert.IsType(t, Text{}, r)
	r, err = New("json")
	require.NoError(t, err)
	assert.IsType(t, JSON{}, r)
	_, err = New("xml")
	assert.Error(t, err)
}

func TestTextResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Results(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "Worst cases over 100 levels")
	assert.Contains(t, out, "Linear")
	assert.Contains(t, out, "Chunked{size: 10}")
	assert.Contains(t, out, "19")
	assert.Contains(t, out, "probes")
}

func TestTextSweep(t *testing.T) {
	cases := []domain.Case{{Threshold: 0, Probes: 1}, {Threshold: 1, Probes: 2}}
	var buf bytes.Buffer
	require.NoError(t, Text{}.Sweep(&buf, "Linear", cases))
	out := buf.String()
	assert.Contains(t, out, "Linear")
	assert.Equal(t, 1, strings.Count(out, "Linear"))
	assert.Contains(t, out, "threshold")
}

func TestJSONResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Results(&buf, results))

	var got []struct {
		Strategy string      `json:"strategy"`
		Kind     string      `json:"kind"`
		Worst    domain.Case `json:"worst"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "linear", got[0].Kind)
	assert.Equal(t, "chunked", got[1].Kind)
	assert.Equal(t, domain.Case{Threshold: 99, Probes: 19}, got[1].Worst)

	buf.Reset()
	require.NoError(t, JSON{}.Results(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONSweep(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Sweep(&buf, "Linear", []domain.Case{{Threshold: 0, Probes: 1}}))
	assert.JSONEq(t, `{"strategy":"Linear","cases":[{"threshold":0,"probes":1}]}`, buf.String())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.RecordWorstCase("Linear", domain.Case{Threshold: 100, Probes: 100})

	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, reg))
	assert.Contains(t, buf.String(), `eggdrop_worst_case_probes{strategy="Linear"} 100`)
	assert.Contains(t, buf.String(), "# TYPE eggdrop_worst_case_threshold gauge")
}
