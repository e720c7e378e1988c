package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	apperrors "team-board-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// Supported export formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer serializes a report
type Renderer interface {
	Render(report *Report) ([]byte, error)
	ContentType() string
}

// NewRenderer returns the renderer for format
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return textRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownExportFormat, format)
	}
}

type jsonRenderer struct{}

func (jsonRenderer) Render(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json report: %w", err)
	}
	return append(data, '\n'), nil
}

func (jsonRenderer) ContentType() string { return "application/json" }

type yamlRenderer struct{}

func (yamlRenderer) Render(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("render yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render yaml report: %w", err)
	}
	return buf.Bytes(), nil
}

func (yamlRenderer) ContentType() string { return "application/yaml" }

const timeLayout = "2006-01-02 15:04:05"

var textTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"stamp": func(t interface{ Format(string) string }) string { return t.Format(timeLayout) },
}).Parse(`Board export generated {{ stamp .GeneratedAt }}
{{- if not .Boards }}

No boards.
{{- end }}
{{- range .Boards }}

================================================================
Board #{{ .BoardID }}: {{ .BoardName }} [{{ .BoardStatus }}]
================================================================
{{- if .Description }}
{{ .Description }}
{{- end }}
Created: {{ stamp .BoardCreationTime }}
Team:    #{{ .TeamID }} {{ .TeamName }}{{ if .TeamDescription }} - {{ .TeamDescription }}{{ end }}{{ if not .TeamCreationTime.IsZero }} (since {{ stamp .TeamCreationTime }}){{ end }}

Tasks ({{ len .Tasks }}):
{{- range .Tasks }}
  - #{{ .TaskID }} {{ .TaskTitle }} [{{ .TaskStatus }}]
    Assignee: {{ .UserDisplayName }} ({{ .UserName }}, #{{ .UserID }})
    Created:  {{ stamp .CreationTime }}
{{- if .Description }}
    {{ .Description }}
{{- end }}
{{- else }}
  (none)
{{- end }}
{{- end }}
`))

type textRenderer struct{}

func (textRenderer) Render(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func (textRenderer) ContentType() string { return "text/plain; charset=utf-8" }
