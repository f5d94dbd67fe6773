package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ntworthk/COTM-2023-04/internal/models"
	"github.com/ntworthk/COTM-2023-04/internal/services/chart"
	"github.com/stretchr/testify/require"
)

func TestRenderBarsWritesPNG(t *testing.T) {
	rows := []models.ChartRow{
		{ReportID: "sep-2020", Label: "Sep 2020", Value: 0.021},
		{ReportID: "mar-2022", Label: "Mar 2022", Value: 0.034},
		{ReportID: "mar-2023", Label: "Mar 2023", Value: 0.041, Highlight: true},
	}
	path := filepath.Join(t.TempDir(), "shares.png")

	err := chart.RenderBars(rows, chart.Options{Title: "Share of words", XLabel: "proportion"}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "output must be a PNG")
}

func TestRenderBarsRejectsEmptyViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := chart.RenderBars(nil, chart.Options{}, path)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist, "no file on failure")
}
