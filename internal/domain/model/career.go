//revive:disable-next-line:var-naming // legacy package name used across the project
package model

// CareerStage is one step within a career path: a title held for a period and
// the skills typically acquired in it.
type CareerStage struct {
	Title  string   `json:"title"`
	Years  string   `json:"years"` // display range, e.g. "0-2"
	Skills []string `json:"skills"`
}

// CareerPath is an ordered journey for one role family, rendered side by side
// on the career map for comparison.
type CareerPath struct {
	ID     string        `json:"id"`
	Role   string        `json:"role"`
	Field  string        `json:"field"`
	Stages []CareerStage `json:"stages"`
}
