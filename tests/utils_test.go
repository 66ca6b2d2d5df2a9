package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func decodeResponseBody[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &result, nil
}

func (s *APITestSuite) doRequest(method, path, token string, body any) *http.Response {
	s.T().Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseUrl+path, reader)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return resp
}

// login authenticates with the bootstrap password and returns the token.
func (s *APITestSuite) login() string {
	resp := s.doRequest(http.MethodPost, "/login", "", map[string]string{
		"password": s.cfg.Admin.InitialPassword,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	result, err := decodeResponseBody[struct {
		Token string `json:"token"`
	}](resp)
	s.Require().NoError(err)
	s.Require().NotEmpty(result.Token)

	return result.Token
}
