package view

import (
	"fmt"
	"html/template"
	"time"

	"facilitywatch/internal/api"
	"facilitywatch/internal/models"
	"facilitywatch/internal/timeline"
	"facilitywatch/internal/utils"
)

// Funcs is the FuncMap shared by every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"timeline":      timeline.Describe,
		"priorityBadge": timeline.PriorityBadge,
		"stepClass":     timeline.StepClass,
		"thumb":         api.ThumbnailURL,
		"markdown":      utils.RenderMarkdown,
		"note":          utils.RenderNote,
		"stripHTML":     utils.StripHTML,
		"dateID": func(ts models.Timestamp) string {
			return utils.DateID(ts.OrNow())
		},
		"dateTimeID": func(ts models.Timestamp) string {
			return utils.DateTimeID(ts.OrNow())
		},
		"liked": func(set map[int]bool, id int) bool {
			return set[id]
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}
