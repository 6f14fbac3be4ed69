package out

import (
	"context"

	"nshub/internal/modules/school/domain"
	schoolout "nshub/internal/modules/school/port/out"
	"nshub/internal/portal"
)

// PortalDirectory answers school searches from the live portal. Directory
// search is unauthenticated, so it works before login.
type PortalDirectory struct {
	client *portal.Client
}

func NewPortalDirectory(client *portal.Client) schoolout.Directory {
	return &PortalDirectory{client: client}
}

func (d *PortalDirectory) Search(ctx context.Context, name string) ([]domain.School, error) {
	found, err := d.client.SearchSchools(ctx, name)
	if err != nil {
		return nil, err
	}
	schools := make([]domain.School, 0, len(found))
	for _, s := range found {
		schools = append(schools, domain.School{
			ID:        int64(s.ID),
			ShortName: s.ShortName,
			Name:      s.Name,
		})
	}
	return schools, nil
}
