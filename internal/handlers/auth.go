package handlers

import (
	"log"
	"net/http"

	"github.com/jredh-dev/whereisit/internal/token"
)

type issueSessionReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// IDToken is a Firebase ID token. Required when the server is
	// configured with a Firebase project; ignored otherwise.
	IDToken string `json:"id_token,omitempty"`
}

// IssueSession signs a credential for the supplied identity and sets it
// as an http-only cookie.
// POST /jwt
func (h *Handler) IssueSession(w http.ResponseWriter, r *http.Request) {
	var req issueSessionReq
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email, name := req.Email, req.Name

	if h.tokens.FirebaseEnabled() {
		if req.IDToken == "" {
			jsonError(w, "id_token is required", http.StatusBadRequest)
			return
		}
		decoded, err := h.tokens.VerifyFirebaseToken(r.Context(), req.IDToken)
		if err != nil {
			jsonError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		// Bind the session to the verified identity, not the body.
		if e, ok := decoded.Claims["email"].(string); ok && e != "" {
			email = e
		}
		if n, ok := decoded.Claims["name"].(string); ok && n != "" {
			name = n
		}
	}

	if email == "" {
		jsonError(w, "email is required", http.StatusBadRequest)
		return
	}

	signed, err := h.tokens.Generate(email, name)
	if err != nil {
		log.Printf("error signing token for %s: %v", email, err)
		jsonError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(token.Expiry.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: http.SameSiteStrictMode,
	})
	jsonOK(w, http.StatusOK, map[string]bool{"success": true})
}

// EndSession invalidates the caller's session by clearing the token
// cookie.
// POST /logout
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies(),
		SameSite: http.SameSiteStrictMode,
	})
	jsonOK(w, http.StatusOK, map[string]bool{"success": true})
}
