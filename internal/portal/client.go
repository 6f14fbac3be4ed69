// Package portal is the school-portal HTTP collaborator. It owns the wire
// protocol and decides error kinds; the modules above it only ever see the
// typed sentinels from platform/errors and the structs from schemas.go.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "nshub/internal/platform/errors"
)

// The portal reports "schedule not published yet" with this numeric code.
const codeScheduleUnavailable = 5288

type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Jar: jar},
	}
}

// SearchSchools queries the public school directory. No session required.
func (c *Client) SearchSchools(ctx context.Context, name string) ([]School, error) {
	params := url.Values{}
	params.Set("name", name)
	var schools []School
	if err := c.do(ctx, http.MethodGet, "/webapi/schools/search", params, nil, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// Login opens an authenticated session. The full portal handshake is not
// reproduced here; the observable contract is the same: a session token plus
// the typed failures callers distinguish on.
func (c *Client) Login(ctx context.Context, username, password string, schoolID int) (*Session, error) {
	form := url.Values{}
	form.Set("UN", username)
	form.Set("PW", password)
	form.Set("SCID", strconv.Itoa(schoolID))

	var resp struct {
		AT        string `json:"at"`
		StudentID int    `json:"studentId"`
		YearID    int    `json:"yearId"`
	}
	if err := c.do(ctx, http.MethodPost, "/webapi/login", nil, form, &resp); err != nil {
		return nil, err
	}
	if resp.AT == "" {
		return nil, fmt.Errorf("%w: empty access token", apperrors.ErrAuth)
	}
	return &Session{c: c, at: resp.AT, studentID: resp.StudentID, yearID: resp.YearID}, nil
}

// Session is the authenticated capability returned by Login. Callers never
// reach into token fields; everything goes through its methods.
type Session struct {
	c         *Client
	at        string
	studentID int
	yearID    int
}

func (s *Session) StudentID() int { return s.studentID }

// Request is the generic authenticated primitive: a GET against a webapi
// endpoint with the session token attached, decoding JSON into out.
func (s *Session) Request(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	return s.c.doAuthed(ctx, http.MethodGet, endpoint, params, nil, out, s.at)
}

// Diary fetches the schedule window. Zero start/end request the portal's
// default week.
func (s *Session) Diary(ctx context.Context, start, end time.Time) (Diary, error) {
	params := url.Values{}
	params.Set("studentId", strconv.Itoa(s.studentID))
	params.Set("yearId", strconv.Itoa(s.yearID))
	if !start.IsZero() {
		params.Set("weekStart", start.Format("2006-01-02"))
	}
	if !end.IsZero() {
		params.Set("weekEnd", end.Format("2006-01-02"))
	}
	var diary Diary
	if err := s.Request(ctx, "/webapi/student/diary", params, &diary); err != nil {
		return Diary{}, err
	}
	return diary, nil
}

// AssignmentDetails looks up one assignment record, including its deletion
// flag and owning subject group.
func (s *Session) AssignmentDetails(ctx context.Context, assignmentID int64) (AssignmentDetails, error) {
	params := url.Values{}
	params.Set("studentId", strconv.Itoa(s.studentID))
	var details AssignmentDetails
	endpoint := fmt.Sprintf("/webapi/student/diary/assigns/%d", assignmentID)
	if err := s.Request(ctx, endpoint, params, &details); err != nil {
		return AssignmentDetails{}, err
	}
	return details, nil
}

// GradeReport fetches the raw grade-report document for a subject group.
// The body is HTML, returned untouched for the grades module to parse.
func (s *Session) GradeReport(ctx context.Context, subjectGroupID int, start, end time.Time) (string, error) {
	params := url.Values{}
	params.Set("studentId", strconv.Itoa(s.studentID))
	params.Set("subjectGroupId", strconv.Itoa(subjectGroupID))
	params.Set("from", start.Format("2006-01-02"))
	params.Set("to", end.Format("2006-01-02"))
	return s.c.doRaw(ctx, http.MethodGet, "/webapi/reports/studentgrades", params, s.at)
}

// Logout releases the server-side session. Callers invoke it on every exit
// path, including error ones.
func (s *Session) Logout(ctx context.Context) error {
	return s.c.doAuthed(ctx, http.MethodPost, "/webapi/auth/logout", nil, nil, nil, s.at)
}

// ─── transport ───────────────────────────────────────────────────────────────

func (c *Client) do(ctx context.Context, method, endpoint string, params, form url.Values, out any) error {
	return c.doAuthed(ctx, method, endpoint, params, form, out, "")
}

func (c *Client) doAuthed(ctx context.Context, method, endpoint string, params, form url.Values, out any, token string) error {
	resp, err := c.send(ctx, method, endpoint, params, form, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, endpoint string, params url.Values, token string) (string, error) {
	resp, err := c.send(ctx, method, endpoint, params, nil, token)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp); err != nil {
		return "", err
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", endpoint, err)
	}
	return string(b), nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, params, form url.Values, token string) (*http.Response, error) {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("at", token)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal request %s: %w", endpoint, err)
	}
	return resp, nil
}

// checkStatus maps portal failures onto the typed sentinels. The numeric
// error-code inspection lives here, at the collaborator boundary, so the
// modules never match on message strings.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	var envelope struct {
		Message   string `json:"message"`
		ErrorCode int    `json:"errorCode"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(b, &envelope)

	if envelope.ErrorCode == codeScheduleUnavailable {
		return apperrors.ErrScheduleUnavailable
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusConflict:
		return fmt.Errorf("%w: %s", apperrors.ErrAuth, messageOr(envelope.Message, resp.Status))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrSchoolNotFound, messageOr(envelope.Message, resp.Status))
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %s", apperrors.ErrNoResponse, messageOr(envelope.Message, resp.Status))
	}
	return fmt.Errorf("portal error: %s", messageOr(envelope.Message, resp.Status))
}

func messageOr(message, fallback string) string {
	if strings.TrimSpace(message) != "" {
		return message
	}
	return fallback
}
