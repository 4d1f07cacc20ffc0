package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/vk/pvcircus/internal/registry"
)

type reportEntry struct {
	Key       string   `json:"key"`
	Level     int      `json:"level"`
	Value     any      `json:"value"`
	Units     string   `json:"units,omitempty"`
	File      string   `json:"file,omitempty"`
	DependsOn []string `json:"depends_on"`
}

type report struct {
	Order   []string      `json:"order"`
	Levels  [][]string    `json:"levels"`
	Entries []reportEntry `json:"entries"`
}

func buildReport(fin *registry.Finalized) (*report, error) {
	levels := fin.Levels()
	levelOf := make(map[string]int, fin.Len())
	for i, level := range levels {
		for _, key := range level {
			levelOf[key] = i
		}
	}

	rep := &report{Order: fin.Order(), Levels: levels}
	for _, key := range rep.Order {
		e, err := fin.Get(key)
		if err != nil {
			return nil, err
		}
		datum, _ := e.Value.(Datum)
		rep.Entries = append(rep.Entries, reportEntry{
			Key:       key,
			Level:     levelOf[key],
			Value:     datum.Value,
			Units:     datum.Units,
			File:      datum.File,
			DependsOn: e.MetaKeys(),
		})
	}
	return rep, nil
}

func (a *App) report(fin *registry.Finalized) error {
	rep, err := buildReport(fin)
	if err != nil {
		return err
	}

	if a.config.Output == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKEY\tLEVEL\tVALUE\tUNITS")
	for i, e := range rep.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%v\t%s\n", i+1, e.Key, e.Level, e.Value, e.Units)
	}
	return tw.Flush()
}
