package services

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/models"
	"github.com/Bigyayos/appgolf/internal/scoring"
)

func sampleLeaderboard() *Leaderboard {
	return &Leaderboard{
		Tournament: models.Tournament{Name: "Copa de Primavera 2024"},
		Mode:       scoring.ModeStableford,
		Par:        72,
		Entries: []scoring.Entry{
			{Position: 1, PlayerName: "Ana", GrossScore: 82, Handicap: 10.5, NetScore: 71.5, Points: 0},
			{Position: 2, PlayerName: "Luis, Jr.", GrossScore: 75, Handicap: 2, NetScore: 73, Points: 1},
		},
	}
}

func TestExportService_CSV(t *testing.T) {
	export, err := newExportService().ExportLeaderboard(sampleLeaderboard(), "CSV")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", export.ContentType)
	assert.Equal(t, "copa-de-primavera-2024-stableford-leaderboard.csv", export.Filename)
	assert.Equal(t,
		"position,player_name,gross_score,handicap,net_score,points\n"+
			"1,Ana,82,10.5,71.5,0\n"+
			"2,\"Luis, Jr.\",75,2,73,1\n",
		string(export.Data))
}

func TestExportService_JSON(t *testing.T) {
	export, err := newExportService().ExportLeaderboard(sampleLeaderboard(), "")
	require.NoError(t, err)

	var decoded Leaderboard
	require.NoError(t, json.Unmarshal(export.Data, &decoded))
	assert.Equal(t, "application/json", export.ContentType)
	assert.Len(t, decoded.Entries, 2)
}

func TestExportService_XLSX(t *testing.T) {
	export, err := newExportService().ExportLeaderboard(sampleLeaderboard(), "xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leaderboard")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, leaderboardHeaders, rows[0])
	assert.Equal(t, "Luis, Jr.", rows[2][1])
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	_, err := newExportService().ExportLeaderboard(sampleLeaderboard(), "pdf")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}
