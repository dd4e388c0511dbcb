package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games     int
	Strategy  string
	Seed      uint64
	QueueSize int

	// Results
	Score         IntStats
	Tiles         IntStats
	BonusTiles    int
	Best          GameResult
	TotalTime     time.Duration
	GameTime      Stats
	Recorded      int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min int
	Max int
	Avg float64
}

func intStats(values []int) IntStats {
	if len(values) == 0 {
		return IntStats{}
	}
	s := IntStats{Min: values[0], Max: values[0]}
	total := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += v
	}
	s.Avg = float64(total) / float64(len(values))
	return s
}

// Summarize fills the result sections of the report.
func (r *Report) Summarize(results []GameResult) {
	scores := make([]int, len(results))
	tiles := make([]int, len(results))
	r.BonusTiles = 0
	r.GameTime.Samples = r.GameTime.Samples[:0]

	for i, res := range results {
		scores[i] = res.Score
		tiles[i] = res.Tiles
		r.BonusTiles += res.BonusTiles
		r.GameTime.Samples = append(r.GameTime.Samples, res.Duration)
		if i == 0 || res.Score > r.Best.Score {
			r.Best = res
		}
	}

	r.Score = intStats(scores)
	r.Tiles = intStats(tiles)
	r.GameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Garden Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Strategy:** {{.Strategy}}
- **First Seed:** {{.Seed}}
- **Queue Size:** {{.QueueSize}}

## Scores
- **Avg:** {{printf "%.1f" .Score.Avg}}
- **Min:** {{.Score.Min}}
- **Max:** {{.Score.Max}} (seed {{.Best.Seed}}, {{.Best.Tiles}} tiles)
- **Tiles per Garden:** {{printf "%.1f" .Tiles.Avg}} (min {{.Tiles.Min}}, max {{.Tiles.Max}})
- **Bonus Tiles Granted:** {{.BonusTiles}}
{{- if .Recorded}}
- **Results Recorded:** {{.Recorded}}
{{- end}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Time per Game:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
