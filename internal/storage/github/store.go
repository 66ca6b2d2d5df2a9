package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yacinedev/mystore-backend/internal/config"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/storage"
	"go.uber.org/zap"
)

const userAgent = "mystore-backend"

// store keeps the document as a file in a GitHub repository via the contents
// API. The file's blob SHA acts as the version token: a save with a stale SHA
// is rejected by GitHub and surfaces as storage.ErrConflict.
type store struct {
	cfg     config.GitHub
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg config.GitHub, logger *zap.Logger) *store {
	return &store{
		cfg:     cfg,
		baseURL: "https://api.github.com",
		client:  &http.Client{},
		logger:  logger,
	}
}

func (s *store) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.baseURL, s.cfg.Owner, s.cfg.Repo, s.cfg.FilePath)
}

type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

func (s *store) Load(ctx context.Context) (*document.Document, storage.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.contentsURL(), nil)
	if err != nil {
		return nil, "", err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("failed to fetch document from github", zap.Error(err))
		return nil, "", fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, "", storage.ErrNotFound
	case http.StatusForbidden:
		s.logger.Error("github token has insufficient permissions")
		return nil, "", fmt.Errorf("fetch document: insufficient token permissions")
	default:
		return nil, "", fmt.Errorf("fetch document: unexpected status %d", resp.StatusCode)
	}

	var contents contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		return nil, "", fmt.Errorf("decode contents response: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(stripNewlines(contents.Content))
	if err != nil {
		return nil, "", fmt.Errorf("decode file content: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("decode document: %w", err)
	}

	return &doc, storage.Version(contents.SHA), nil
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

func (s *store) Save(ctx context.Context, doc *document.Document, version storage.Version) (storage.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	body, err := json.Marshal(putRequest{
		Message: fmt.Sprintf("update store data - %s", time.Now().UTC().Format(time.RFC3339)),
		Content: base64.StdEncoding.EncodeToString(data),
		SHA:     string(version),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("failed to save document to github", zap.Error(err))
		return "", fmt.Errorf("save document: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// Stale SHA: someone committed the file since our load.
		io.Copy(io.Discard, resp.Body)
		return "", storage.ErrConflict
	case http.StatusForbidden:
		s.logger.Error("github token has insufficient permissions")
		return "", fmt.Errorf("save document: insufficient token permissions")
	default:
		return "", fmt.Errorf("save document: unexpected status %d", resp.StatusCode)
	}

	var saved putResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return "", fmt.Errorf("decode save response: %w", err)
	}

	return storage.Version(saved.Content.SHA), nil
}

func (s *store) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+s.cfg.Token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
}

// The contents API wraps base64 payloads at 60 columns.
func stripNewlines(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
