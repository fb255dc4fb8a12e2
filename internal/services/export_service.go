package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Bigyayos/appgolf/internal/errors"
)

// ExportFormat specifies the format for exporting leaderboards
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

const leaderboardSheet = "Leaderboard"

var leaderboardHeaders = []string{"position", "player_name", "gross_score", "handicap", "net_score", "points"}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// Export is a rendered leaderboard ready to download
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// exportServiceImpl implements ExportService
type exportServiceImpl struct{}

// newExportService creates a new export service implementation
func newExportService() ExportService {
	return &exportServiceImpl{}
}

// ExportLeaderboard renders a leaderboard as json, csv or xlsx. An empty format means json.
func (s *exportServiceImpl) ExportLeaderboard(lb *Leaderboard, format string) (*Export, error) {
	if lb == nil {
		return nil, errors.InvalidInput("leaderboard is required", nil).WithOperation("ExportLeaderboard")
	}

	f := ExportFormat(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = FormatJSON
	}

	var (
		data        []byte
		contentType string
		err         error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(lb, "", "  ")
		contentType = "application/json"
	case FormatCSV:
		data, err = s.exportToCSV(lb)
		contentType = "text/csv"
	case FormatXLSX:
		data, err = s.exportToXLSX(lb)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported export format: %s", format), nil).WithOperation("ExportLeaderboard")
	}
	if err != nil {
		return nil, errors.InternalError("failed to render leaderboard", err).WithOperation("ExportLeaderboard")
	}

	return &Export{
		Data:        data,
		ContentType: contentType,
		Filename:    exportFilename(lb, f),
	}, nil
}

func (s *exportServiceImpl) exportToCSV(lb *Leaderboard) ([]byte, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	if err := writer.Write(leaderboardHeaders); err != nil {
		return nil, err
	}

	for _, row := range leaderboardRows(lb) {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(output.String()), nil
}

func (s *exportServiceImpl) exportToXLSX(lb *Leaderboard) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return nil, err
	}

	for col, header := range leaderboardHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(leaderboardSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, e := range lb.Entries {
		values := []interface{}{e.Position, e.PlayerName, e.GrossScore, e.Handicap, e.NetScore, e.Points}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(leaderboardSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func leaderboardRows(lb *Leaderboard) [][]string {
	rows := make([][]string, len(lb.Entries))
	for i, e := range lb.Entries {
		rows[i] = []string{
			strconv.Itoa(e.Position),
			e.PlayerName,
			formatFloat(e.GrossScore),
			formatFloat(e.Handicap),
			formatFloat(e.NetScore),
			formatFloat(e.Points),
		}
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func exportFilename(lb *Leaderboard, f ExportFormat) string {
	slug := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(lb.Tournament.Name), "-"), "-")
	if slug == "" {
		slug = "tournament"
	}
	return fmt.Sprintf("%s-%s-leaderboard.%s", slug, lb.Mode, f)
}
