package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
)

const successPage = `<!DOCTYPE html>
<html>
<head><title>Calendar Connected</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>&#9989; Google Calendar connected</h1>
<p>%s You can close this tab and return to the chat.</p>
</body>
</html>`

const failurePage = `<!DOCTYPE html>
<html>
<head><title>Connection Failed</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>&#10060; Connection failed</h1>
<p>%s</p>
</body>
</html>`

// Callback handles the Google OAuth redirect. It is user-facing, so it
// renders HTML rather than the JSON envelope the API routes use.
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
			[]byte(fmt.Sprintf(failurePage, "Missing state or authorization code.")))
		return
	}

	out, err := h.uc.CompleteLink(ctx, account.CompleteLinkInput{State: state, Code: code})
	if err != nil {
		h.l.Errorf(ctx, "account.http.Callback: %v", err)
		msg := "Something went wrong. Please run /connect again."
		status := http.StatusInternalServerError
		if errors.Is(err, account.ErrInvalidState) {
			msg = "This link has expired. Please run /connect again."
			status = http.StatusBadRequest
		}
		c.Data(status, "text/html; charset=utf-8", []byte(fmt.Sprintf(failurePage, msg)))
		return
	}

	greeting := ""
	if out.Email != "" {
		greeting = fmt.Sprintf("Linked as %s.", out.Email)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(successPage, greeting)))
}
