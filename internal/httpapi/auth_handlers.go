package httpapi

import (
	"errors"
	"net/http"
	"time"

	"vitrina.org/internal/account"
	"vitrina.org/internal/audit"
	"vitrina.org/internal/store"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
}

type profileRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
	Role       string `json:"role"`
}

// accountResponse is the wire shape of an account. The stored credential
// never crosses the HTTP boundary.
type accountResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Role       string `json:"role"`
	JoinDate   string `json:"joinDate"`
}

type sessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   accountResponse `json:"account"`
}

const tokenTTL = 15 * time.Minute

func toAccountResponse(acc store.Account) accountResponse {
	return accountResponse{
		ID:         acc.ID,
		Email:      acc.Email,
		Name:       acc.Name,
		ProfilePic: acc.ProfilePic,
		Role:       acc.Role,
		JoinDate:   acc.JoinDate,
	}
}

func (a *API) issueSession(w http.ResponseWriter, r *http.Request, code int, acc store.Account) {
	token, err := account.GenerateToken(acc.ID, acc.Role, tokenTTL)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token generation failed")
		return
	}
	writeJSON(w, code, sessionResponse{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(tokenTTL),
		Account:   toAccountResponse(acc),
	})
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := a.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.signin", map[string]any{
		"account_id": acc.ID,
		"email":      acc.Email,
	})
	a.issueSession(w, r, http.StatusOK, acc)
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := a.accounts.SignUp(r.Context(), req.Email, req.Password, req.Name, req.ProfilePic)
	if err != nil {
		handleAccountError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.signup", map[string]any{
		"account_id": acc.ID,
		"email":      acc.Email,
	})
	a.issueSession(w, r, http.StatusCreated, acc)
}

func (a *API) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := a.accounts.SignOut(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	_ = audit.LogEvent(r.Context(), "auth.signout", nil)
	writeJSON(w, http.StatusOK, map[string]any{"status": "signed_out"})
}

func (a *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.getProfile(w, r)
	case http.MethodPut:
		a.updateProfile(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	acc, err := a.accounts.Current(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if acc == nil {
		writeError(w, r, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(*acc))
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := a.accounts.UpdateProfile(r.Context(), account.ProfileUpdate{
		Name:       req.Name,
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
		Role:       req.Role,
	})
	if err != nil {
		handleAccountError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.profile.update", map[string]any{
		"account_id": acc.ID,
	})
	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

func (a *API) handleAdminsCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := a.accounts.AddAdministrator(r.Context(), req.Email, req.Password, req.Name, req.ProfilePic)
	if err != nil {
		handleAccountError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.admin.create", map[string]any{
		"account_id": acc.ID,
		"email":      acc.Email,
	})
	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

func handleAccountError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, account.ErrMissingFields):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrNotAuthenticated):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, account.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
