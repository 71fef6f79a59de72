// Package refdata holds the read-only reference data consumed while
// configuring nodes: the message template catalog and the team member
// directory. The core never mutates either.
package refdata

import "strings"

// TemplateStatus is the review state of a message template.
type TemplateStatus string

const (
	TemplateApproved TemplateStatus = "APPROVED"
	TemplatePending  TemplateStatus = "PENDING"
	TemplateRejected TemplateStatus = "REJECTED"
)

// Template is a pre-approved message template a send_template node can send.
type Template struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status TemplateStatus `json:"status"`
}

// ApprovedTemplates filters the catalog down to templates a node may select.
func ApprovedTemplates(in []Template) []Template {
	out := make([]Template, 0, len(in))
	for _, t := range in {
		if t.Status == TemplateApproved {
			out = append(out, t)
		}
	}
	return out
}

// TeamMember is a person an assign_user node can hand a conversation to.
// Some directories supply a single display name, others first/last parts.
type TeamMember struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName returns the member's name, composing it from the first/last
// parts when no single name is set.
func (m TeamMember) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
