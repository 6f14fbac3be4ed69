package out

import (
	"context"
	"fmt"
	"time"

	gradesout "nshub/internal/modules/grades/port/out"
	schoolin "nshub/internal/modules/school/port/in"
	"nshub/internal/platform/config"
	"nshub/internal/portal"
)

// PortalReportSource opens a portal session per fetch and logs out when
// done, errors included.
type PortalReportSource struct {
	client  *portal.Client
	creds   config.Provider
	schools schoolin.Usecase
}

func NewPortalReportSource(client *portal.Client, creds config.Provider, schools schoolin.Usecase) gradesout.ReportSource {
	return &PortalReportSource{client: client, creds: creds, schools: schools}
}

func (s *PortalReportSource) Fetch(ctx context.Context, subjectGroupID int, from, to time.Time) (string, error) {
	creds, err := s.creds.Load()
	if err != nil {
		return "", err
	}
	schoolID, err := s.schools.Resolve(ctx, creds.School)
	if err != nil {
		return "", fmt.Errorf("resolve school %q: %w", creds.School, err)
	}
	sess, err := s.client.Login(ctx, creds.Username, creds.Password, int(schoolID))
	if err != nil {
		return "", err
	}
	defer sess.Logout(context.WithoutCancel(ctx))

	return sess.GradeReport(ctx, subjectGroupID, from, to)
}
