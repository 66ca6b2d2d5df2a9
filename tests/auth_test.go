package tests

import (
	"net/http"
)

func (s *APITestSuite) TestLoginWrongPassword() {
	resp := s.doRequest(http.MethodPost, "/login", "", map[string]string{
		"password": "definitely-wrong",
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestLoginMissingPassword() {
	resp := s.doRequest(http.MethodPost, "/login", "", map[string]string{})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestLoginAndProfile() {
	token := s.login()

	resp := s.doRequest(http.MethodGet, "/user/profile", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	profile, err := decodeResponseBody[struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}](resp)
	s.Require().NoError(err)
	s.Assert().Equal("Store Admin", profile.Name)
	s.Assert().Equal("administrator", profile.Role)
}

func (s *APITestSuite) TestProtectedEndpointsRequireToken() {
	for _, path := range []string{"/user/profile", "/orders", "/analytics", "/dashboard/stats"} {
		resp := s.doRequest(http.MethodGet, path, "", nil)
		resp.Body.Close()
		s.Assert().Equal(http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := s.doRequest(http.MethodGet, "/user/profile", "garbage.token.value", nil)
	resp.Body.Close()
	s.Assert().Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestChangePassword() {
	token := s.login()

	resp := s.doRequest(http.MethodPut, "/user/password", token, map[string]string{
		"currentPassword": s.cfg.Admin.InitialPassword,
		"newPassword":     "a-new-password",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// The old password no longer works.
	resp = s.doRequest(http.MethodPost, "/login", "", map[string]string{
		"password": s.cfg.Admin.InitialPassword,
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)

	// The new one does.
	resp = s.doRequest(http.MethodPost, "/login", "", map[string]string{
		"password": "a-new-password",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestChangePasswordWrongCurrent() {
	token := s.login()

	resp := s.doRequest(http.MethodPut, "/user/password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "a-new-password",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)
}
