package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/gameobject/component"
)

type Report struct {
	Frames   int64
	Elapsed  time.Duration
	Entities []*component.Entity
	Stats    *component.RunnerStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Component Demo Report

## Run
- **Frames:** {{.Frames}}
- **Entities:** {{.Stats.EntityCount}}
- **Wall Time:** {{.Elapsed}}

## Final Entity State
{{range .Entities -}}
- **{{.Name}}:** position {{.Position}}, velocity {{.Velocity}}
{{end}}
## Update Timings
{{range .Stats.Entities -}}
- **{{.Name}}:** {{.FrameCount}} frames, avg {{.AvgDuration}} (min {{.MinDuration}}, max {{.MaxDuration}})
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
