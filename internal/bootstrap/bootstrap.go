package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	diaryinadapter "nshub/internal/modules/diary/adapter/in"
	diaryoutadapter "nshub/internal/modules/diary/adapter/out"
	diaryin "nshub/internal/modules/diary/port/in"
	diaryservice "nshub/internal/modules/diary/service"
	diaryusecase "nshub/internal/modules/diary/usecase"
	gradesinadapter "nshub/internal/modules/grades/adapter/in"
	gradesoutadapter "nshub/internal/modules/grades/adapter/out"
	gradesin "nshub/internal/modules/grades/port/in"
	gradesservice "nshub/internal/modules/grades/service"
	gradesusecase "nshub/internal/modules/grades/usecase"
	schoolinadapter "nshub/internal/modules/school/adapter/in"
	schooloutadapter "nshub/internal/modules/school/adapter/out"
	schoolservice "nshub/internal/modules/school/service"
	schoolusecase "nshub/internal/modules/school/usecase"
	"nshub/internal/platform/clock"
	"nshub/internal/platform/config"
	"nshub/internal/portal"
	uiapp "nshub/internal/ui/app"
)

type App struct {
	Creds config.Provider

	DiaryCLI  diaryinadapter.CLIHandler
	GradesCLI gradesinadapter.CLIHandler
	SchoolCLI schoolinadapter.CLIHandler

	diaryUC  diaryin.Usecase
	gradesUC gradesin.Usecase
}

// New wires the portal client, the school resolver with its directory cache,
// and the diary and grades pipelines. configPath may be empty, in which case
// credentials live under the user config directory.
func New(configPath string) (*App, error) {
	creds, err := newProvider(configPath)
	if err != nil {
		return nil, err
	}

	baseURL := config.DefaultBaseURL
	if loaded, err := creds.Load(); err == nil && loaded.BaseURL != "" {
		baseURL = loaded.BaseURL
	}
	client := portal.NewClient(baseURL)

	cache, err := schooloutadapter.NewSQLiteSchoolCache(schoolCachePath())
	if err != nil {
		return nil, fmt.Errorf("new school cache: %w", err)
	}
	schoolUC := schoolusecase.NewInteractor(schoolservice.NewResolverService(
		schooloutadapter.NewPortalDirectory(client),
		cache,
	))

	opener := diaryoutadapter.NewPortalOpener(client, creds, schoolUC)
	diaryUC := diaryusecase.NewInteractor(diaryservice.NewAggregationService(clock.SystemClock{}, opener))

	gradesUC := gradesusecase.NewInteractor(gradesservice.NewReportService(
		gradesoutadapter.NewPortalReportSource(client, creds, schoolUC),
	))

	return &App{
		Creds:     creds,
		DiaryCLI:  diaryinadapter.NewCLIHandler(diaryUC),
		GradesCLI: gradesinadapter.NewCLIHandler(gradesUC),
		SchoolCLI: schoolinadapter.NewCLIHandler(schoolUC),
		diaryUC:   diaryUC,
		gradesUC:  gradesUC,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Creds, app.diaryUC, app.gradesUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newProvider(configPath string) (config.Provider, error) {
	if configPath != "" {
		return config.NewFileProviderAt(configPath), nil
	}
	return config.NewFileProvider()
}

// schoolCachePath keeps the directory cache under the user cache dir, apart
// from the credentials file.
func schoolCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "nshub", "schools.db")
}
