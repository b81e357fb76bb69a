package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"metaprobe/internal/pipeline"
	"metaprobe/internal/scanlog"
)

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	row := make(table.Row, len(headers))
	for i, header := range headers {
		row[i] = header
	}
	tw.AppendHeader(row)
	return tw
}

// trackTable renders one normalized track as a two-column field table, in
// the track's insertion order. Values go through formatValue so quantities
// and durations keep their printable forms.
func trackTable(track *pipeline.Track) string {
	tw := newTable("Field", "Value")
	for _, key := range track.Keys() {
		value, _ := track.Get(key)
		tw.AppendRow(table.Row{key, formatValue(value)})
	}
	return tw.Render()
}

// providersTable renders provider availability in registry order.
func providersTable(statuses []providerStatus) string {
	tw := newTable("Provider", "Available", "Version")
	for _, status := range statuses {
		tw.AppendRow(table.Row{
			status.Name,
			yesNo(status.Available),
			strings.TrimSpace(formatVersions(status.Version)),
		})
	}
	return tw.Render()
}

// historyTable renders scan outcomes, track and warning counts right-aligned.
func historyTable(entries []scanlog.Entry) string {
	tw := newTable("Scanned", "Path", "Provider", "Video", "Audio", "Subtitle", "Warnings")
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Path,
			entry.Provider,
			entry.VideoTracks,
			entry.AudioTracks,
			entry.SubtitleTracks,
			entry.Warnings,
		})
	}
	configs := make([]table.ColumnConfig, 0, 4)
	for column := 4; column <= 7; column++ {
		configs = append(configs, table.ColumnConfig{
			Number:      column,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
