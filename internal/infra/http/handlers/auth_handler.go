package handlers

import (
	"errors"
	"net/http"

	"github.com/erino/leadcrm/internal/entity"
	"github.com/erino/leadcrm/internal/infra/http/middleware"
	"github.com/erino/leadcrm/internal/usecase"
)

type AuthHandler struct {
	RegisterUC *usecase.RegisterUserUseCase
	LoginUC    *usecase.LoginUserUseCase
	Users      entity.UserRepositoryInterface

	// CookieSecure should be true behind TLS.
	CookieSecure bool
	CookieMaxAge int
}

func NewAuthHandler(registerUC *usecase.RegisterUserUseCase, loginUC *usecase.LoginUserUseCase, users entity.UserRepositoryInterface, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		RegisterUC:   registerUC,
		LoginUC:      loginUC,
		Users:        users,
		CookieSecure: cookieSecure,
		CookieMaxAge: 24 * 60 * 60,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := decodeStrict(r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			writeMessage(w, http.StatusBadRequest, "Please provide a valid email and a password of at least 6 characters")
		case errors.Is(err, entity.ErrEmailAlreadyExists):
			writeMessage(w, http.StatusBadRequest, "A user with this email already exists")
		default:
			writeMessage(w, http.StatusInternalServerError, "Server error during registration: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, usecase.UserOutput{ID: user.ID, Email: user.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := decodeStrict(r, &input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error during login: "+err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.CookieMaxAge,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, usecase.UserOutput{ID: user.ID, Email: user.Email})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	writeMessage(w, http.StatusOK, "Successfully logged out")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}

	user, err := h.Users.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error fetching user: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}
