package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"metaprobe/internal/pipeline"
	"metaprobe/internal/provider"
	"metaprobe/internal/units"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	return line
}

// renderResult prints one normalized result section by section: go-pretty
// tables with colorized headers on a terminal, plain key/value lines when the
// output is piped.
func renderResult(out io.Writer, result *provider.Result) {
	tty := shouldColorize(out)

	section := func(title string, track *pipeline.Track) {
		fmt.Fprintln(out, renderSectionHeader(title, tty))
		fmt.Fprintln(out, renderTrack(track, tty))
	}

	if result.General != nil {
		section("General", result.General)
	}
	for i, track := range result.Video {
		section(fmt.Sprintf("Video #%d", i+1), track)
	}
	for i, track := range result.Audio {
		section(fmt.Sprintf("Audio #%d", i+1), track)
	}
	for i, track := range result.Subtitle {
		section(fmt.Sprintf("Subtitle #%d", i+1), track)
	}

	fmt.Fprintf(out, "Provider: %s%s\n", result.Provider.Name, formatVersions(result.Provider.Version))
}

func renderTrack(track *pipeline.Track, asTable bool) string {
	if asTable {
		return trackTable(track)
	}
	var b strings.Builder
	for _, key := range track.Keys() {
		value, _ := track.Get(key)
		fmt.Fprintf(&b, "%s: %s\n", key, formatValue(value))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return yesNo(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Duration:
		return v.String()
	case units.Quantity:
		return v.String()
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, " / ")
	default:
		return fmt.Sprint(v)
	}
}

func formatVersions(versions map[string]string) string {
	if len(versions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(versions))
	for location, version := range versions {
		parts = append(parts, fmt.Sprintf("%s (%s)", version, location))
	}
	return " " + strings.Join(parts, ", ")
}

func renderWarnings(out io.Writer, warnings []pipeline.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(out, "Warnings:")
	for _, warning := range warnings {
		fmt.Fprintf(out, "  - %s\n", warning)
	}
}
