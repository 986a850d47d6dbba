package v1

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "tp_session"
	flashCookie   = "tp_flash"
)

// signToken returns the hex HMAC-SHA256 of the token under the session
// secret. The cookie carries "token.signature" so a tampered token reads
// as anonymous instead of hitting the database.
func signToken(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// setSessionCookie writes the signed session cookie. The cookie lives as
// long as the server-side session TTL; the DB row is the source of truth,
// the cookie just stops stale browsers resending dead tokens.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	value := token + "." + signToken(h.secret, token)
	c.SetCookie(sessionCookie, value, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

// readSessionCookie returns the verified session token, or "" when the
// cookie is absent, malformed or carries a bad signature.
func (h *Handler) readSessionCookie(c *gin.Context) string {
	value, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}

	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return ""
	}
	expected := signToken(h.secret, token)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ""
	}

	return token
}

// clearSessionCookie expires the session cookie.
func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// flash stores a one-shot message for the next rendered page.
func flash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
