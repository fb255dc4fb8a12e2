package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/Bigyayos/appgolf/internal/scoring"
)

// rankInput is the file format read by the rank command
type rankInput struct {
	Players []scoring.Player `json:"players"`
	Scores  []scoring.Score  `json:"scores"`
}

type rankOutput struct {
	Mode       scoring.Mode    `json:"mode"`
	Par        float64         `json:"par"`
	Entries    []scoring.Entry `json:"entries"`
	Unresolved []string        `json:"unresolved,omitempty"`
}

func newRankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "rank a set of scores without touching the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "JSON file, - for stdin", Value: "-"},
			&cli.StringFlag{Name: "mode", Value: string(scoring.ModeMedal)},
			&cli.Float64Flag{Name: "par", Value: scoring.DefaultPar},
			&cli.StringFlag{Name: "format", Value: "table", Usage: "table, json or csv"},
		},
		Action: func(c *cli.Context) error {
			mode, err := scoring.ParseMode(c.String("mode"))
			if err != nil {
				return err
			}

			in, err := openInput(c.String("input"), c.App.Reader)
			if err != nil {
				return err
			}
			defer in.Close()

			input, err := readRankInput(in)
			if err != nil {
				return err
			}

			out := rank(input, mode, c.Float64("par"))
			return writeRanking(c.App.Writer, out, c.String("format"))
		},
	}
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func readRankInput(r io.Reader) (*rankInput, error) {
	var input rankInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return &input, nil
}

func rank(input *rankInput, mode scoring.Mode, par float64) rankOutput {
	players := scoring.PlayersByName(input.Players)
	return rankOutput{
		Mode:       mode,
		Par:        scoring.NormalizePar(par),
		Entries:    scoring.NewRankingBuilder().Build(input.Scores, players, mode, par),
		Unresolved: scoring.Unresolved(input.Scores, players),
	}
}

func writeRanking(w io.Writer, out rankOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"position", "player_name", "gross_score", "handicap", "net_score", "points"})
		for _, e := range out.Entries {
			_ = cw.Write([]string{
				strconv.Itoa(e.Position),
				e.PlayerName,
				formatNumber(e.GrossScore),
				formatNumber(e.Handicap),
				formatNumber(e.NetScore),
				formatNumber(e.Points),
			})
		}
		cw.Flush()
		return cw.Error()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "POS\tPLAYER\tGROSS\tHCP\tNET\tPOINTS\n")
		for _, e := range out.Entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.Position, e.PlayerName,
				formatNumber(e.GrossScore), formatNumber(e.Handicap), formatNumber(e.NetScore), formatNumber(e.Points))
		}
		if len(out.Unresolved) > 0 {
			fmt.Fprintf(tw, "\nunknown players (handicap 0): %v\n", out.Unresolved)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
