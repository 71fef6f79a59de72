package ports

import (
	"context"

	"github.com/rahultadvi/chatflow/pkg/refdata"
)

// TemplateCatalog supplies the approved message templates a send_template
// node can reference. Read-only.
type TemplateCatalog interface {
	Templates(ctx context.Context) ([]refdata.Template, error)
}

// TeamDirectory supplies the team members an assign_user node can reference.
// Read-only.
type TeamDirectory interface {
	Members(ctx context.Context) ([]refdata.TeamMember, error)
}
