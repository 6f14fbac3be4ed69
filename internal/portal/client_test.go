package portal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "nshub/internal/platform/errors"
	"nshub/internal/portal"
)

func newTestPortal(t *testing.T, handler http.Handler) *portal.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return portal.NewClient(server.URL)
}

func login(t *testing.T, client *portal.Client) *portal.Session {
	t.Helper()
	session, err := client.Login(context.Background(), "ivanov", "secret", 42)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return session
}

func TestLoginReturnsSessionCapability(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST login, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("UN") != "ivanov" || r.PostForm.Get("SCID") != "42" {
			t.Errorf("unexpected login form: %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"at":"token-1","studentId":777,"yearId":12}`))
	})
	client := newTestPortal(t, mux)

	session := login(t, client)
	if session.StudentID() != 777 {
		t.Fatalf("expected student id 777, got %d", session.StudentID())
	}
}

func TestLoginMapsAuthFailure(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Неправильный пароль"}`))
	})
	client := newTestPortal(t, mux)

	_, err := client.Login(context.Background(), "ivanov", "wrong", 42)
	if !errors.Is(err, apperrors.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestLoginMapsSchoolNotFound(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"school is unknown"}`))
	})
	client := newTestPortal(t, mux)

	if _, err := client.Login(context.Background(), "u", "p", 99); !errors.Is(err, apperrors.ErrSchoolNotFound) {
		t.Fatalf("expected ErrSchoolNotFound, got %v", err)
	}
}

func TestServerFailureMapsToNoResponse(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newTestPortal(t, mux)

	if _, err := client.Login(context.Background(), "u", "p", 1); !errors.Is(err, apperrors.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
}

func TestDiaryDecodesWindowAndAssignments(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"at":"token-1","studentId":777,"yearId":12}`))
	})
	mux.HandleFunc("/webapi/student/diary", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("at") != "token-1" {
			t.Errorf("missing session token, got %q", r.Header.Get("at"))
		}
		if r.URL.Query().Get("studentId") != "777" {
			t.Errorf("missing studentId param")
		}
		_, _ = w.Write([]byte(`{
			"weekStart": "2024-09-02T00:00:00",
			"weekEnd": "2024-09-08",
			"weekDays": [{
				"date": "2024-09-02T00:00:00",
				"lessons": [{
					"number": 1,
					"subjectName": "Алгебра",
					"room": "212",
					"startTime": "08:30",
					"endTime": "09:15",
					"assignments": [{
						"id": 101,
						"typeName": "Домашнее задание",
						"assignmentName": "№ 56, 57",
						"mark": null,
						"dueDate": "2024-09-03T00:00:00",
						"isDuty": false
					}]
				}]
			}]
		}`))
	})
	client := newTestPortal(t, mux)
	session := login(t, client)

	diary, err := session.Diary(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("diary: %v", err)
	}
	if len(diary.WeekDays) != 1 || len(diary.WeekDays[0].Lessons) != 1 {
		t.Fatalf("unexpected diary shape: %+v", diary)
	}
	assignment := diary.WeekDays[0].Lessons[0].Assignments[0]
	if assignment.ID != 101 || assignment.Mark != nil || assignment.Content != "№ 56, 57" {
		t.Fatalf("unexpected assignment: %+v", assignment)
	}
	if diary.WeekEnd.Day() != 8 {
		t.Fatalf("bare-date decoding failed: %v", diary.WeekEnd)
	}
}

func TestScheduleUnavailableCodeMapsToSentinel(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"at":"token-1","studentId":777,"yearId":12}`))
	})
	mux.HandleFunc("/webapi/student/diary", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Расписание недоступно","errorCode":5288}`))
	})
	client := newTestPortal(t, mux)
	session := login(t, client)

	_, err := session.Diary(context.Background(), time.Now(), time.Now())
	if !errors.Is(err, apperrors.ErrScheduleUnavailable) {
		t.Fatalf("expected ErrScheduleUnavailable, got %v", err)
	}
}

func TestAssignmentDetailsAndLogout(t *testing.T) {
	t.Parallel()
	var loggedOut bool
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"at":"token-1","studentId":777,"yearId":12}`))
	})
	mux.HandleFunc("/webapi/student/diary/assigns/101", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":101,"isDeleted":false,"subjectGroup":{"id":5,"name":"9А/Алгебра"}}`))
	})
	mux.HandleFunc("/webapi/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		loggedOut = r.Method == http.MethodPost && r.Header.Get("at") == "token-1"
	})
	client := newTestPortal(t, mux)
	session := login(t, client)

	details, err := session.AssignmentDetails(context.Background(), 101)
	if err != nil {
		t.Fatalf("assignment details: %v", err)
	}
	if details.IsDeleted || details.SubjectGroup.Name != "9А/Алгебра" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !loggedOut {
		t.Fatalf("logout request never reached the server")
	}
}

func TestSearchSchools(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/webapi/schools/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "СОШ" {
			t.Errorf("unexpected query: %v", r.URL.Query())
		}
		_, _ = w.Write([]byte(`[{"id":42,"shortName":"МБОУ СОШ №1","name":"Средняя школа №1"}]`))
	})
	client := newTestPortal(t, mux)

	schools, err := client.SearchSchools(context.Background(), "СОШ")
	if err != nil {
		t.Fatalf("search schools: %v", err)
	}
	if len(schools) != 1 || schools[0].ID != 42 {
		t.Fatalf("unexpected schools: %+v", schools)
	}
}
