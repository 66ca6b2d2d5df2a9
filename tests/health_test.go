package tests

import (
	"net/http"
)

func (s *APITestSuite) TestHealth() {
	resp := s.doRequest(http.MethodGet, "/health", "", nil)

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	result, err := decodeResponseBody[struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().Equal("OK", result.Status)
	s.Assert().NotEmpty(result.Timestamp)
}
