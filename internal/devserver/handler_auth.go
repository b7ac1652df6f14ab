package devserver

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login/admin.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "email is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	if !s.admin.check(req.Email, req.Password) {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.jwts.GenerateToken(s.admin.user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  s.admin.user,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless here, so this
// only acknowledges; the client clears its own session.
func (s *Server) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Refresh handles POST /api/auth/refresh.
func (s *Server) Refresh(c *gin.Context) {
	claims := mustClaims(c)
	token, err := s.jwts.GenerateToken(claimsUser(claims))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Profile handles GET /api/auth/profile.
func (s *Server) Profile(c *gin.Context) {
	claims := mustClaims(c)
	c.JSON(http.StatusOK, gin.H{"user": claimsUser(claims)})
}

// GoogleLogin handles GET /api/auth/google. The real backend redirects to
// Google and back; the fixture server short-circuits straight to the callback
// redirect with token and user query parameters.
func (s *Server) GoogleLogin(c *gin.Context) {
	redirectURI := c.Query("redirect_uri")
	if redirectURI == "" {
		respondError(c, http.StatusBadRequest, "redirect_uri is required")
		return
	}
	target, err := url.Parse(redirectURI)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid redirect_uri")
		return
	}

	token, err := s.jwts.GenerateToken(s.admin.user)
	if err != nil {
		s.redirectWithError(c, target, "token_issue_failed")
		return
	}
	blob, err := json.Marshal(s.admin.user)
	if err != nil {
		s.redirectWithError(c, target, "profile_encode_failed")
		return
	}

	q := target.Query()
	q.Set("token", token)
	q.Set("user", string(blob))
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}

func (s *Server) redirectWithError(c *gin.Context, target *url.URL, code string) {
	q := target.Query()
	q.Set("error", code)
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}
