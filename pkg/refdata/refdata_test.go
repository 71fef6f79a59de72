package refdata

import "testing"

func TestApprovedTemplates(t *testing.T) {
	catalog := []Template{
		{ID: "t1", Name: "order_update", Status: TemplateApproved},
		{ID: "t2", Name: "draft", Status: TemplatePending},
		{ID: "t3", Name: "spam", Status: TemplateRejected},
		{ID: "t4", Name: "welcome", Status: TemplateApproved},
	}

	got := ApprovedTemplates(catalog)
	if len(got) != 2 {
		t.Fatalf("ApprovedTemplates() = %d templates, want 2", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t4" {
		t.Errorf("ApprovedTemplates() kept %q and %q, want t1 and t4", got[0].ID, got[1].ID)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		member TeamMember
		want   string
	}{
		{TeamMember{Name: "Ada Lovelace"}, "Ada Lovelace"},
		{TeamMember{FirstName: "Grace", LastName: "Hopper"}, "Grace Hopper"},
		{TeamMember{FirstName: "Plato"}, "Plato"},
		{TeamMember{Name: "Full", FirstName: "Ignored"}, "Full"},
	}
	for _, tt := range tests {
		if got := tt.member.DisplayName(); got != tt.want {
			t.Errorf("DisplayName() = %q, want %q", got, tt.want)
		}
	}
}
