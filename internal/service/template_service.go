// internal/service/template_service.go
package service

import (
	"strconv"
	"strings"

	"github.com/unclebandit/influencer-admin/internal/model"
)

var summaryTemplates = map[model.ChangeAction]string{
	model.ActionCreate: "Created {entity} #{id}",
	model.ActionUpdate: "Updated {entity} #{id}",
	model.ActionDelete: "Deleted {entity} #{id}",
	model.ActionReset:  "Reset all records to the sample dataset",
}

// RenderTemplate replaces {key} placeholders. Empty values render as N/A.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		if v == "" {
			v = "N/A"
		}
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

// Summarize renders the one-line activity text for a change event.
func Summarize(ev model.ChangeEvent) string {
	tmpl, ok := summaryTemplates[ev.Action]
	if !ok {
		tmpl = "{action} {entity} #{id}"
	}
	id := ""
	if ev.RecordID > 0 {
		id = strconv.FormatInt(ev.RecordID, 10)
	}
	return RenderTemplate(tmpl, map[string]string{
		"action": string(ev.Action),
		"entity": string(ev.Entity),
		"id":     id,
	})
}
